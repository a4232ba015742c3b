package server

import (
	"fmt"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/pkg/errcodes"
	"tg_dealscan/pkg/httpx/reply"
	"tg_dealscan/pkg/httpx/req"
	"tg_dealscan/pkg/rest"
)

type settingsReader interface {
	Snapshot() entity.Settings
}

type evaluator interface {
	Evaluate(text string) (entity.ListingFacts, entity.DealVerdict, bool)
}

type SettingsServer struct {
	settings  settingsReader
	evaluator evaluator
}

func NewSettingsServer(settings settingsReader, evaluator evaluator) SettingsServer {
	return SettingsServer{
		settings:  settings,
		evaluator: evaluator,
	}
}

func (s SettingsServer) getV1Settings(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTSettings(s.settings.Snapshot()))

	return nil
}

// postV1Evaluate оценивает текст как объявление, ничего не отправляя и не меняя.
func (s SettingsServer) postV1Evaluate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.EvaluateRequest

	if err := req.Read(w, r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if strings.TrimSpace(request.Text) == "" {
		return failure.NewInvalidArgumentError(
			"empty listing text",
			failure.WithCode(errcodes.InvalidListingText),
			failure.WithDescription("text must not be blank"),
		)
	}

	facts, verdict, ok := s.evaluator.Evaluate(request.Text)

	reply.JSON(ctx, w, http.StatusOK, newRESTEvaluation(facts, verdict, ok))

	return nil
}
