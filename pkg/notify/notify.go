// Package notify delivers alert notifications over shoutrrr service URLs
// (email, slack, discord, ...). The engine stays transport-agnostic; it only
// sees the INotifier interface.
package notify

import (
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	router "github.com/nicholas-fedor/shoutrrr/pkg/router"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
	"go.uber.org/zap"

	"liyu1981.xyz/glucose-insights-service/pkg/common"
)

// ShoutrrrNotifier fans one message out to every configured service URL.
// A single sender is created for all URLs up front so malformed URLs fail at
// construction, not at alert time.
type ShoutrrrNotifier struct {
	urls   []string
	sender *router.ServiceRouter
}

func NewShoutrrrNotifier(urls []string) (*ShoutrrrNotifier, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("at least one notification URL is required")
	}

	sender, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, err
	}
	sender.SetLogger(log.New(io.Discard, "", 0))

	return &ShoutrrrNotifier{
		urls:   slices.Clone(urls),
		sender: sender,
	}, nil
}

// NewShoutrrrNotifierFromEnv reads the comma-separated URL list from
// GLUCOSE_NOTIFY_URLS. An unset or empty variable returns nil without error;
// the engine runs fine with no notifier.
func NewShoutrrrNotifierFromEnv() (*ShoutrrrNotifier, error) {
	raw := strings.TrimSpace(common.GetEnv(common.EnvKeyGlucoseNotifyUrls, ""))
	if raw == "" {
		return nil, nil
	}

	var urls []string
	for _, url := range strings.Split(raw, ",") {
		if url = strings.TrimSpace(url); url != "" {
			urls = append(urls, url)
		}
	}
	if len(urls) == 0 {
		return nil, nil
	}

	return NewShoutrrrNotifier(urls)
}

// Notify sends one message to all configured services. The recipient ids are
// carried in the body; routing to a person is the receiving service's concern.
func (n *ShoutrrrNotifier) Notify(recipientIDs []string, subject string, body string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameGlucoseCore,
		zap.String(common.LoggerFieldGlucoseCategory, common.LoggerCategoryNotify),
	)

	params := stypes.Params{}
	params.SetTitle(subject)

	message := fmt.Sprintf("To: %s\n%s", strings.Join(recipientIDs, ", "), body)

	errs := n.sender.Send(message, &params)
	var firstErr error
	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		logger.Warn("Notification delivery partially failed",
			zap.Int("services", len(n.urls)),
			zap.Int("failed", failed),
			zap.Error(firstErr))
		return firstErr
	}

	logger.Info("Notification sent",
		zap.Strings("recipient_ids", recipientIDs),
		zap.String("subject", subject),
		zap.Int("services", len(n.urls)))
	return nil
}
