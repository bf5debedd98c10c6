// Package insights turns the current product snapshot into an AI-written
// narrative report. The generation call is the one operation in the system
// that leaves the process; everything around it is built to degrade, never
// to fail loudly.
package insights

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/catalog"
)

// Fallback is shown whenever generation fails, whatever the cause. The
// underlying error only goes to the log.
const Fallback = "Error generating analysis. Please check your connection and try again."

// Generator produces text from a prompt. Satisfied by *Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProductSource supplies the active snapshot the report is written about.
// Satisfied by *catalog.Service.
type ProductSource interface {
	Active() []catalog.Product
}

// Service requests narrative reports. Concurrent requests collapse onto a
// single in-flight generation; the service never touches catalog state.
type Service struct {
	generator Generator
	products  ProductSource
	logger    *slog.Logger
	timeout   time.Duration
	group     singleflight.Group
}

// NewService wires a Generator with the product source.
func NewService(generator Generator, products ProductSource, logger *slog.Logger, timeout time.Duration) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{generator: generator, products: products, logger: logger, timeout: timeout}
}

// Report generates the narrative for the current snapshot. It always
// returns displayable text: the collaborator's output verbatim on success,
// Fallback otherwise.
func (s *Service) Report(ctx context.Context) string {
	text, err, _ := s.group.Do("report", func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		return s.generator.Generate(ctx, BuildPrompt(s.products.Active()))
	})
	if err != nil {
		s.logger.Error("narrative generation failed", slog.Any("error", err))
		return Fallback
	}
	return text.(string)
}
