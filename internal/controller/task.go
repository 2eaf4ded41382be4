package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/filter"
	"github.com/abelbrown/moviematch/internal/mood"
)

// Resolver turns mood text into genres. *mood.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, text string) mood.Resolution
}

// Task is blocking work started by an intent. It must not touch controller
// state; it only returns a Completion.
type Task func(ctx context.Context) Completion

// Completion is the result of a Task, applied with Controller.Complete.
type Completion interface {
	completion()
}

// CatalogLoaded completes LoadCatalog.
type CatalogLoaded struct {
	Outcome catalog.LoadOutcome
}

// MoodResolved completes OnMoodSubmit.
type MoodResolved struct {
	Token      uint64
	Resolution mood.Resolution
}

func (CatalogLoaded) completion() {}
func (MoodResolved) completion()  {}

// MoodSummary describes a mood result.
func MoodSummary(n int, text string) string {
	return fmt.Sprintf(`Found %d movies perfect for your mood: "%s"`, n, text)
}

// LoadCatalog marks the catalog busy and returns the task that loads it.
// The task never fails; a broken source yields the sample catalog.
func (c *Controller) LoadCatalog() Task {
	c.setBusy(ControlCatalog, true)
	src := c.source
	return func(ctx context.Context) Completion {
		return CatalogLoaded{Outcome: catalog.Load(ctx, src)}
	}
}

// OnMoodSubmit validates text and returns the task that resolves it. While
// the task is pending a second submit is rejected with ErrBusy.
func (c *Controller) OnMoodSubmit(text string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		c.view.ShowNotice(NoticeEmptyMood)
		return nil, ErrEmptyMood
	}
	if c.busy[ControlMood] {
		return nil, ErrBusy
	}

	c.token++
	token := c.token
	resolver := c.resolver
	c.setBusy(ControlMood, true)

	return func(ctx context.Context) Completion {
		var res mood.Resolution
		if resolver == nil {
			res = mood.NewResolver(nil).Resolve(ctx, text)
		} else {
			res = resolver.Resolve(ctx, text)
		}
		return MoodResolved{Token: token, Resolution: res}
	}, nil
}

// Complete applies a finished task. It must run on the event thread.
func (c *Controller) Complete(done Completion) {
	switch done := done.(type) {
	case CatalogLoaded:
		c.applyCatalog(done.Outcome)
	case MoodResolved:
		c.applyMood(done)
	}
}

func (c *Controller) applyCatalog(out catalog.LoadOutcome) {
	c.setBusy(ControlCatalog, false)
	if out.Index == nil {
		out.Index = catalog.NewIndex(catalog.SampleMovies())
		out.Degraded = true
	}
	if out.Degraded {
		c.logger.Warn("catalog unavailable, using sample movies", "err", out.Err)
	} else {
		c.logger.Info("catalog loaded", "movies", out.Index.Len(), "genres", len(out.Index.Genres()))
	}
	c.index = out.Index
	c.degraded = out.Degraded
	c.renderChips()
}

func (c *Controller) applyMood(done MoodResolved) {
	c.setBusy(ControlMood, false)

	res := done.Resolution
	if done.Token != c.token {
		c.logger.Debug("dropping stale mood result", "text", res.Text, "token", done.Token, "latest", c.token)
		return
	}
	if res.Fallback() {
		c.logger.Info("mood resolved by keywords", "text", res.Text, "genres", res.Genres, "err", res.Err)
	} else {
		c.logger.Info("mood resolved", "text", res.Text, "genres", res.Genres, "source", string(res.Source))
	}

	result := filter.ByGenres(c.index.Movies(), res.Genres)
	result.Summary = MoodSummary(result.Len(), res.Text)
	c.present(result)
}
