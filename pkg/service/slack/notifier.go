package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/partner-agent/invitecheck/pkg/domain/interfaces"
	"github.com/partner-agent/invitecheck/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts invitation events to a Slack channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID string
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NewNotifier creates a Notifier for channelID
func NewNotifier(client interfaces.SlackClient, channelID string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
	}
}

// Notify posts event as a Block Kit message
func (n *Notifier) Notify(ctx context.Context, event model.Event) error {
	if n.channelID == "" {
		return goerr.New("slack channel is not configured", goerr.V("check_id", event.CheckID))
	}

	channel, ts, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(BuildEventText(event), false),
		slack.MsgOptionBlocks(BuildEventBlocks(event)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to notify invitation event",
			goerr.V("check_id", event.CheckID),
			goerr.V("kind", event.Kind),
		)
	}

	ctxlog.From(ctx).Debug("Invitation event posted to Slack",
		"check_id", event.CheckID,
		"channel", channel,
		"ts", ts,
	)
	return nil
}
