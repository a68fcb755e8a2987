package utils

import "time"

// ParseDate interpreta datas no formato YYYY-MM-DD vindas da query string.
// String vazia resulta em nil.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// StartOfToday retorna a meia-noite local do dia de referência
func StartOfToday(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
