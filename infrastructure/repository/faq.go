package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/techhr/ad-manager-api/infrastructure/database/postgres"
	"github.com/techhr/ad-manager-api/internal/domain"
)

const (
	faqsTable = "faqs"
)

var faqColumns = []string{
	"id", "question", "answer", "category", "language", "is_frequent", "views", "created_at",
}

type FAQRepository interface {
	ListFrequent(language string, limit uint64) ([]*domain.FAQ, error)
	Search(term, language string, limit uint64) ([]*domain.FAQ, error)
	List(language, category string) ([]*domain.FAQ, error)
	IncrementViews(id string) (*domain.FAQ, error)
}

type faqRepository struct {
	conn *postgres.Connection
}

func NewFAQRepository(conn *postgres.Connection) FAQRepository {
	return &faqRepository{
		conn: conn,
	}
}

func (r *faqRepository) ListFrequent(language string, limit uint64) ([]*domain.FAQ, error) {
	queryBuilder := squirrel.
		Select(faqColumns...).
		From(faqsTable).
		Where(squirrel.Eq{"is_frequent": true, "language": language}).
		OrderBy("views DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryFAQs(queryBuilder)
}

// Search faz busca por substring (case-insensitive) em pergunta e resposta
func (r *faqRepository) Search(term, language string, limit uint64) ([]*domain.FAQ, error) {
	pattern := "%" + term + "%"

	queryBuilder := squirrel.
		Select(faqColumns...).
		From(faqsTable).
		Where(squirrel.Eq{"language": language}).
		Where(squirrel.Or{
			squirrel.ILike{"question": pattern},
			squirrel.ILike{"answer": pattern},
		}).
		OrderBy("views DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryFAQs(queryBuilder)
}

func (r *faqRepository) List(language, category string) ([]*domain.FAQ, error) {
	queryBuilder := squirrel.
		Select(faqColumns...).
		From(faqsTable).
		Where(squirrel.Eq{"language": language}).
		OrderBy("views DESC").
		PlaceholderFormat(squirrel.Dollar)

	if category != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"category": category})
	}

	return r.queryFAQs(queryBuilder)
}

// IncrementViews soma 1 ao contador e retorna a FAQ atualizada.
// Retorna nil quando a FAQ não existe.
func (r *faqRepository) IncrementViews(id string) (*domain.FAQ, error) {
	queryBuilder := squirrel.
		Update(faqsTable).
		Set("views", squirrel.Expr("views + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, question, answer, category, language, is_frequent, views, created_at").
		PlaceholderFormat(squirrel.Dollar)

	faqsSQL, faqsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	row := r.conn.QueryRow(faqsSQL, faqsArgs...)
	faq, err := scanFAQ(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao incrementar visualizações: %w", err)
	}

	return faq, nil
}

func (r *faqRepository) queryFAQs(queryBuilder squirrel.SelectBuilder) ([]*domain.FAQ, error) {
	faqsSQL, faqsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(faqsSQL, faqsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar FAQs: %w", err)
	}
	defer rows.Close()

	faqs := make([]*domain.FAQ, 0)
	for rows.Next() {
		faq, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear FAQ: %w", err)
		}
		faqs = append(faqs, faq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return faqs, nil
}

func scanFAQ(row rowScanner) (*domain.FAQ, error) {
	var faq domain.FAQ
	err := row.Scan(
		&faq.ID,
		&faq.Question,
		&faq.Answer,
		&faq.Category,
		&faq.Language,
		&faq.IsFrequent,
		&faq.Views,
		&faq.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &faq, nil
}
