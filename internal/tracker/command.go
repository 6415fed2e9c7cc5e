package tracker

import (
	"strings"
	"unicode"
)

type CommandKind int

const (
	CommandStartActivity CommandKind = iota
	CommandEndActivity
	CommandRequestSummary
	CommandUnrecognized
)

// Command — результат чистой классификации входящего текста.
// Побочных эффектов здесь нет: применяет команду Service.
type Command struct {
	Kind  CommandKind
	Label string     // название активности (только для старта)
	Clock *ClockTime // явно указанное пользователем время, если было
}

var summaryKeywords = map[string]bool{
	"report": true,
	"репорт": true,
}

var endPrefixes = []string{"end", "stop", "стоп", "конец", "finish"}

// Classify разбирает текст сообщения в команду. Последний токен,
// похожий на время ("жим 9:30", "end 18:00"), отделяется от названия.
func Classify(raw string) Command {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	if lower == "" {
		return Command{Kind: CommandUnrecognized}
	}

	if summaryKeywords[lower] {
		return Command{Kind: CommandRequestSummary}
	}

	for _, prefix := range endPrefixes {
		if strings.HasPrefix(lower, prefix) {
			cmd := Command{Kind: CommandEndActivity}
			parts := strings.Fields(trimmed)
			if len(parts) >= 2 {
				cmd.Clock = ParseClockTime(parts[len(parts)-1])
			}
			return cmd
		}
	}

	parts := strings.Fields(trimmed)
	cmd := Command{Kind: CommandStartActivity}
	if clock := ParseClockTime(parts[len(parts)-1]); clock != nil {
		cmd.Clock = clock
		cmd.Label = capitalize(strings.Join(parts[:len(parts)-1], " "))
	} else {
		cmd.Label = capitalize(strings.Join(parts, " "))
	}
	return cmd
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
