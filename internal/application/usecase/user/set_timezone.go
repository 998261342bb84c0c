package user

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/budget-bot/backend/internal/application/adapter"
	domainerror "github.com/budget-bot/backend/internal/domain/error"
)

// timezonePattern extracts the hour part of a "City (UTC+03:00)" style
// message. The minus sign may arrive as U+2212 from chat clients.
var timezonePattern = regexp.MustCompile(`UTC\s*([+\-]?\d+):\d+`)

// SetTimezoneInput represents the input for setting a user's timezone.
type SetTimezoneInput struct {
	UserID  int64
	Message string
}

// SetTimezoneUseCase handles parsing and storing a user's whole-hour UTC
// offset.
type SetTimezoneUseCase struct {
	users adapter.UserRepository
}

// NewSetTimezoneUseCase creates a new SetTimezoneUseCase instance.
func NewSetTimezoneUseCase(users adapter.UserRepository) *SetTimezoneUseCase {
	return &SetTimezoneUseCase{
		users: users,
	}
}

// Execute parses the timezone message and stores the offset.
func (uc *SetTimezoneUseCase) Execute(ctx context.Context, input SetTimezoneInput) (int, error) {
	offset, err := ParseTimezone(input.Message)
	if err != nil {
		return 0, err
	}

	existing, err := uc.users.FindByID(ctx, input.UserID)
	if err != nil {
		return 0, domainerror.NewUserError(
			domainerror.ErrCodeUserInternalError,
			"failed to look up user",
			err,
		)
	}
	if existing == nil {
		return 0, domainerror.NewUserError(
			domainerror.ErrCodeUserNotFound,
			"user is not registered",
			domainerror.ErrUserNotFound,
		)
	}

	if err := uc.users.UpdateTimezone(ctx, input.UserID, offset); err != nil {
		return 0, domainerror.NewUserError(
			domainerror.ErrCodeUserInternalError,
			"failed to store timezone",
			err,
		)
	}
	return offset, nil
}

// ParseTimezone extracts the whole-hour UTC offset from a "City (UTC±HH:MM)"
// message.
func ParseTimezone(message string) (int, error) {
	normalized := strings.ReplaceAll(message, "−", "-")
	match := timezonePattern.FindStringSubmatch(normalized)
	if match == nil {
		return 0, domainerror.NewUserError(
			domainerror.ErrCodeInvalidTimezone,
			"Часовой пояс не найден в сообщении. Попробуйте снова.",
			domainerror.ErrInvalidTimezone,
		)
	}

	offset, err := strconv.Atoi(match[1])
	if err != nil || offset < -12 || offset > 14 {
		return 0, domainerror.NewUserError(
			domainerror.ErrCodeInvalidTimezone,
			"Часовой пояс не найден в сообщении. Попробуйте снова.",
			domainerror.ErrInvalidTimezone,
		)
	}
	return offset, nil
}
