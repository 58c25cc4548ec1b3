// file: internals/features/college/personal_timetable/service/query_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	m "college_backend/internals/features/college/personal_timetable/model"
	"college_backend/internals/features/college/personal_timetable/repository"
)

var ErrGenerationFailed = errors.New("text generation failed")

// TextGenerator produces free text for a system instruction and a user turn.
type TextGenerator interface {
	Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

type QueryResult struct {
	Answer  string
	Entries []m.TimetableEntryModel
}

type QueryService struct {
	store repository.PersonalTimetableStore
	gen   TextGenerator
	log   *zap.Logger
}

func NewQueryService(store repository.PersonalTimetableStore, gen TextGenerator, log *zap.Logger) *QueryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &QueryService{store: store, gen: gen, log: log}
}

// Answer replies to a question about the user's own timetable. Users with no
// entries get NoClassesAnswer without a generator call. Generator errors
// wrap ErrGenerationFailed and are not retried.
func (s *QueryService) Answer(ctx context.Context, userID uuid.UUID, query string) (QueryResult, error) {
	entries, err := s.store.ListPersonalEntries(ctx, userID)
	if err != nil {
		return QueryResult{}, err
	}
	if len(entries) == 0 {
		return QueryResult{Answer: NoClassesAnswer, Entries: []m.TimetableEntryModel{}}, nil
	}

	answer, err := s.gen.Generate(ctx, SystemInstruction(entries), query)
	if err != nil {
		s.log.Error("timetable query: generation failed",
			zap.String("user_id", userID.String()),
			zap.Int("entries", len(entries)),
			zap.Error(err),
		)
		return QueryResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	relevant := ExtractRelevant(entries, query)
	s.log.Debug("timetable query answered",
		zap.String("user_id", userID.String()),
		zap.Int("entries", len(entries)),
		zap.Int("relevant", len(relevant)),
	)
	return QueryResult{Answer: answer, Entries: relevant}, nil
}
