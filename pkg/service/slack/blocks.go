package slack

import (
	"fmt"

	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/slack-go/slack"
)

// GetEventEmoji returns emoji based on the event kind
func GetEventEmoji(kind model.EventKind) string {
	switch kind {
	case model.EventInvitationChecked:
		return "✅"
	case model.EventInvitationRejected:
		return "⚠️"
	default:
		return "❓"
	}
}

// BuildEventText returns the plain-text fallback for an event
func BuildEventText(event model.Event) string {
	if event.Kind == model.EventInvitationChecked {
		return fmt.Sprintf("%s Invitation accepted: %s", GetEventEmoji(event.Kind), labelOrDash(event.Label))
	}
	return fmt.Sprintf("%s Invitation rejected (%s): %s", GetEventEmoji(event.Kind), event.Stage, event.Error)
}

// BuildEventBlocks creates the Block Kit message for an invitation event
func BuildEventBlocks(event model.Event) []slack.Block {
	title := "Invitation accepted"
	if event.Kind == model.EventInvitationRejected {
		title = "Invitation rejected"
	}

	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, fmt.Sprintf("%s %s", GetEventEmoji(event.Kind), title), true, false),
	)

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Label:*\n%s", labelOrDash(event.Label)), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Stage:*\n`%s`", event.Stage), false, false),
	}
	blocks := []slack.Block{
		header,
		slack.NewSectionBlock(nil, fields, nil),
	}

	if event.Error != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Error:*\n%s", event.Error), false, false),
			nil, nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("Check `%s` at %s", event.CheckID, event.OccurredAt.UTC().Format("2006-01-02 15:04:05 MST")),
			false, false),
	))
	return blocks
}

func labelOrDash(label string) string {
	if label == "" {
		return "-"
	}
	return label
}
