package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.ParseInLocation(time.DateOnly, dateStr, time.Local)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate devolve a data de calendário (YYYY-MM-DD) no fuso do próprio
// instante, sem normalizar para UTC. O mesmo instante pode gerar datas
// diferentes dependendo do fuso em que foi criado.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// StartOfDay zera o horário mantendo o fuso do instante
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
