package report

import (
	"context"
	"errors"
	"time"

	"github.com/budget-bot/backend/internal/application/adapter"
	"github.com/budget-bot/backend/internal/domain/entity"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// StepResult is the outcome of one dialogue turn. When ErrorText is set the
// input was rejected and the session did not advance; Prompt always carries
// the text for the state the user should answer next. Done marks the turn
// that produced the report.
type StepResult struct {
	State     entity.ReportState
	Prompt    string
	ErrorText string
	Done      bool
	Report    *Artifact
}

// DialogUseCase drives the multi-turn collection of report parameters. It
// owns the session lifecycle: one in-flight session per user, discarded once
// a report is produced or the dialogue is cancelled. Turn serialization for
// a given user is the transport's responsibility.
type DialogUseCase struct {
	sessions adapter.SessionStore
	generate *GenerateReportUseCase
}

// NewDialogUseCase creates a new DialogUseCase instance.
func NewDialogUseCase(sessions adapter.SessionStore, generate *GenerateReportUseCase) *DialogUseCase {
	return &DialogUseCase{
		sessions: sessions,
		generate: generate,
	}
}

// Start opens a fresh report dialogue for the user, replacing any session
// left over from an abandoned one.
func (uc *DialogUseCase) Start(ctx context.Context, userID int64) (*StepResult, error) {
	session := entity.NewReportSession(userID)
	if err := uc.sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	return &StepResult{
		State:  session.State,
		Prompt: Prompt(session.State),
	}, nil
}

// Cancel discards the user's in-flight session. No aggregation has started
// before Ready, so cancellation is always safe.
func (uc *DialogUseCase) Cancel(ctx context.Context, userID int64) error {
	return uc.sessions.Clear(ctx, userID)
}

// Step applies one user token to the session. Validation failures are
// resolved here: the session stays put and the result carries the re-prompt
// text. Only state violations and collaborator failures surface as errors.
func (uc *DialogUseCase) Step(ctx context.Context, userID int64, token string) (*StepResult, error) {
	session, err := uc.sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeSessionNotFound,
			"no report session in progress for user",
			domainerror.ErrSessionNotFound,
		)
	}

	next, stepErr := uc.applyToken(session, token)
	if stepErr != nil {
		var reportErr *domainerror.ReportError
		if errors.As(stepErr, &reportErr) && reportErr.IsValidation() {
			return &StepResult{
				State:     session.State,
				Prompt:    Prompt(session.State),
				ErrorText: reportErr.Message,
			}, nil
		}
		return nil, stepErr
	}

	if next == entity.StateReady {
		// The dialogue is atomic from here: generate, then discard the
		// session whether or not generation succeeded.
		artifact, genErr := uc.generate.Execute(ctx, session)
		if clearErr := uc.sessions.Clear(ctx, userID); clearErr != nil && genErr == nil {
			genErr = clearErr
		}
		if genErr != nil {
			return nil, genErr
		}
		return &StepResult{
			State:  entity.StateReady,
			Done:   true,
			Report: artifact,
		}, nil
	}

	session.State = next
	if err := uc.sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	return &StepResult{
		State:  next,
		Prompt: Prompt(next),
	}, nil
}

// applyToken validates the token for the session's current state, writes the
// collected value, and resolves the next state. The session is only mutated
// on successful validation.
func (uc *DialogUseCase) applyToken(session *entity.ReportSession, token string) (entity.ReportState, error) {
	switch session.State {
	case entity.StateChooseGranularity:
		granularity := entity.Granularity(token)
		if !granularity.IsValid() {
			return "", invalidChoice("Выберите точность периода из предложенных вариантов.")
		}
		session.Granularity = granularity
		return uc.advance(session)

	case entity.StateCollectStartYear:
		year, err := ValidateYear(token)
		if err != nil {
			return "", err
		}
		session.Start.Year = year
		return uc.advance(session)

	case entity.StateCollectStartMonth:
		month, err := ValidateMonth(token)
		if err != nil {
			return "", err
		}
		session.Start.Month = int(month)
		return uc.advance(session)

	case entity.StateCollectStartDay:
		day, err := ValidateDay(token, session.Start.Year, time.Month(session.Start.Month))
		if err != nil {
			return "", err
		}
		session.Start.Day = day
		return uc.advance(session)

	case entity.StateCollectEndYear:
		year, err := ValidateYear(token)
		if err != nil {
			return "", err
		}
		session.End.Year = year
		return uc.advance(session)

	case entity.StateCollectEndMonth:
		month, err := ValidateMonth(token)
		if err != nil {
			return "", err
		}
		session.End.Month = int(month)
		return uc.advance(session)

	case entity.StateCollectEndDay:
		day, err := ValidateDay(token, session.End.Year, time.Month(session.End.Month))
		if err != nil {
			return "", err
		}
		session.End.Day = day
		return uc.advance(session)

	case entity.StateChooseGroupType:
		switch entity.GroupType(token) {
		case entity.GroupByArticle:
			// By-article reports have no sub-period: straight to format.
			session.GroupType = entity.GroupByArticle
			return entity.StateChooseFormat, nil
		case entity.GroupByPeriod:
			session.GroupType = entity.GroupByPeriod
			return entity.StateChooseSubPeriod, nil
		}
		return "", invalidChoice("Выберите группировку: по статьям или по периодам.")

	case entity.StateChooseSubPeriod:
		switch entity.SubPeriod(token) {
		case entity.SubPeriodYear, entity.SubPeriodMonth:
			session.SubPeriod = entity.SubPeriod(token)
			return entity.StateChooseFormat, nil
		}
		return "", invalidChoice("Выберите разбивку: по годам или по месяцам.")

	case entity.StateChooseFormat:
		switch entity.OutputFormat(token) {
		case entity.FormatCSV, entity.FormatXML, entity.FormatJSON:
			session.Format = entity.OutputFormat(token)
			return entity.StateReady, nil
		}
		return "", invalidChoice("Выберите формат файла из предложенных вариантов.")
	}

	return "", domainerror.NewReportError(
		domainerror.ErrCodeStateViolation,
		"report session is in an unexpected state: "+string(session.State),
		domainerror.ErrStateViolation,
	)
}

// advance looks up the next temporal collection state in the transition
// table.
func (uc *DialogUseCase) advance(session *entity.ReportSession) (entity.ReportState, error) {
	next, ok := nextState(session.State, session.Granularity)
	if !ok {
		return "", domainerror.NewReportError(
			domainerror.ErrCodeStateViolation,
			"no transition from state "+string(session.State),
			domainerror.ErrStateViolation,
		)
	}
	return next, nil
}

func invalidChoice(message string) *domainerror.ReportError {
	return domainerror.NewReportError(
		domainerror.ErrCodeInvalidChoice,
		message,
		domainerror.ErrInvalidChoice,
	)
}
