package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/masmgr/gitpoll/internal/logging"
)

// LabelPlaceholder is replaced by the build label in tag message templates.
const LabelPlaceholder = "{0}"

// Tagger creates and pushes an annotated tag for successful builds.
type Tagger struct {
	run      runner
	template string
	enabled  bool
}

// NewTagger creates a tagger. An empty template falls back to DefaultTagCommitMessage.
func NewTagger(r runner, template string, enabled bool) *Tagger {
	if template == "" {
		template = DefaultTagCommitMessage
	}
	return &Tagger{run: r, template: template, enabled: enabled}
}

// Message renders the tag message for label.
func (t *Tagger) Message(label string) string {
	return strings.ReplaceAll(t.template, LabelPlaceholder, label)
}

// Tag runs "tag -a" and then "push --tags". Nothing is issued unless tagging
// is enabled and the build succeeded, and push is skipped if tagging fails.
func (t *Tagger) Tag(ctx context.Context, label string, succeeded bool) error {
	if !t.enabled || !succeeded {
		logging.Logger.Debug("Skipping tag", "enabled", t.enabled, "succeeded", succeeded)
		return nil
	}
	if strings.TrimSpace(label) == "" {
		return fmt.Errorf("%w: empty label", ErrTag)
	}

	if _, err := t.run.run(ctx, "tag", "-a", "-m", t.Message(label), label); err != nil {
		return fmt.Errorf("%w: tag %s: %w", ErrTag, label, err)
	}
	if _, err := t.run.run(ctx, "push", "--tags"); err != nil {
		return fmt.Errorf("%w: push: %w", ErrTag, err)
	}

	logging.Logger.Info("Tagged release", "label", label)
	return nil
}
