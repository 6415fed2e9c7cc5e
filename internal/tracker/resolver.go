package tracker

import "strings"

// FindOpenSession ищет последнюю активность без времени окончания.
// Скан идёт от свежих записей к старым: открытой почти всегда оказывается
// последняя строка, а при нарушении инварианта "не больше одной открытой"
// детерминированно возвращается самая свежая из них.
// Возвращает (-1, nil), если открытых активностей нет.
func FindOpenSession(records []ActivityRecord) (int, *ActivityRecord) {
	for idx := len(records) - 1; idx >= 0; idx-- {
		if strings.TrimSpace(records[idx].EndTime) == "" {
			rec := records[idx]
			return idx, &rec
		}
	}
	return -1, nil
}
