package placesearch

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
	"github.com/kceleski/ava-care-compass/internal/provider"
)

const summarySystemPrompt = "You are a helpful senior care search assistant. " +
	"Create conversational summaries with useful markup for displaying search results."

// SummaryOutcome is the result of one background summary task. It never
// reaches the caller of Search; it is only logged and observed.
type SummaryOutcome struct {
	SearchResultID uuid.UUID
	Err            error
	Duration       time.Duration
}

// dispatchSummary starts summary generation detached from the request.
func (s *Service) dispatchSummary(ctx context.Context, sr domain.SearchResult, places []domain.Place) {
	detached := context.WithoutCancel(ctx)

	s.tasks.Add(1)
	go func() {
		defer s.tasks.Done()

		taskCtx, cancel := context.WithTimeout(detached, s.cfg.SummaryTimeout)
		defer cancel()

		start := time.Now()
		err := s.summarize(taskCtx, sr, places)
		s.reportSummary(taskCtx, SummaryOutcome{
			SearchResultID: sr.ID,
			Err:            err,
			Duration:       time.Since(start),
		})
	}()
}

func (s *Service) summarize(ctx context.Context, sr domain.SearchResult, places []domain.Place) error {
	prompt := buildSummaryPrompt(sr.SearchQuery, places, s.cfg.SummaryPlaces)

	text, err := s.generator.Complete(ctx, summarySystemPrompt, []provider.Message{
		{Role: domain.MessageRoleUser, Content: prompt},
	})
	if err != nil {
		return fmt.Errorf("generate summary: %w", err)
	}

	_, err = s.repo.CreateSummary(ctx, domain.ConversationSummary{
		SearchResultID: sr.ID,
		UserID:         sr.UserID,
		SummaryText:    text,
		MarkupContent:  text,
	})
	if err != nil {
		return fmt.Errorf("store summary: %w", err)
	}
	return nil
}

func (s *Service) reportSummary(ctx context.Context, o SummaryOutcome) {
	s.obs.ObserveSummary(o.Err, o.Duration)

	if o.Err != nil {
		s.log.WarnContext(ctx, "search summary failed",
			slog.String("search_result_id", o.SearchResultID.String()),
			slog.Duration("duration", o.Duration),
			slog.String("error", o.Err.Error()),
		)
		return
	}
	s.log.InfoContext(ctx, "search summary stored",
		slog.String("search_result_id", o.SearchResultID.String()),
		slog.Duration("duration", o.Duration),
	)
}

// buildSummaryPrompt embeds at most limit places into the fixed template.
func buildSummaryPrompt(query string, places []domain.Place, limit int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following search results for %q, create a helpful summary for a senior care search assistant:\n\n", query)
	fmt.Fprintf(&b, "Found %d facilities. Here are the key details:\n", len(places))

	for _, p := range places[:min(len(places), limit)] {
		rating := "N/A"
		if p.Rating != nil {
			rating = strconv.FormatFloat(*p.Rating, 'f', -1, 64)
		}
		address := "Address not available"
		if p.RawAddress != nil {
			address = *p.RawAddress
		}

		fmt.Fprintf(&b, "- %s (Rating: %s)\n", p.Title, rating)
		fmt.Fprintf(&b, "  Address: %s\n", address)
		if p.PhoneNumber != nil {
			fmt.Fprintf(&b, "  Phone: %s\n", *p.PhoneNumber)
		}
		if p.Website != nil {
			fmt.Fprintf(&b, "  Website: %s\n", *p.Website)
		}
	}

	b.WriteString("\nCreate a conversational summary that highlights the best options and includes helpful markup for displaying facility cards with map links.")
	return b.String()
}
