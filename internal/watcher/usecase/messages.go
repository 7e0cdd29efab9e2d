package usecase

import (
	"fmt"
	"unicode/utf8"

	"github.com/ssysek/orlik-bot2/internal/models"
	"github.com/ssysek/orlik-bot2/internal/watcher/dto"
)

const mentions = "@here @channel @everyone"

// FoundMessage announces free slots. The slot dump is shortened when the
// whole message would not fit in one Discord message; the mentions always
// survive.
func FoundMessage(courtID int, slots models.SlotList) string {
	prefix := fmt.Sprintf("SLOTY na %d (%d): ", courtID, slots.Len())
	suffix := " " + mentions

	budget := dto.MaxContentLength - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(suffix)
	rendered := slots.String()
	if utf8.RuneCountInString(rendered) > budget {
		rendered = string([]rune(rendered)[:budget-1]) + "…"
	}

	return prefix + rendered + suffix
}

func HeartbeatMessage(courtID int, fromDate, toDate string) string {
	return fmt.Sprintf("Heartbeat ✅: No slots found for %d in range %s→%s", courtID, fromDate, toDate)
}

func ErrorMessage(err error) string {
	return "ERROR: " + err.Error()
}
