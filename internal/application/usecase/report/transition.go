package report

import (
	"github.com/budget-bot/backend/internal/domain/entity"
)

// transitionKey pairs the current dialogue state with the granularity chosen
// at entry. The same physical collection states are shared by all three
// granularities; the stored granularity decides which prompt comes next.
type transitionKey struct {
	state       entity.ReportState
	granularity entity.Granularity
}

// transitions is the explicit next-state table for the temporal collection
// phase. States past ChooseGroupType branch on the group type instead and
// are handled in the step function.
var transitions = map[transitionKey]entity.ReportState{
	{entity.StateChooseGranularity, entity.GranularityYear}:      entity.StateCollectStartYear,
	{entity.StateChooseGranularity, entity.GranularityYearMonth}: entity.StateCollectStartYear,
	{entity.StateChooseGranularity, entity.GranularityFullDate}:  entity.StateCollectStartYear,

	{entity.StateCollectStartYear, entity.GranularityYear}:      entity.StateCollectEndYear,
	{entity.StateCollectStartYear, entity.GranularityYearMonth}: entity.StateCollectStartMonth,
	{entity.StateCollectStartYear, entity.GranularityFullDate}:  entity.StateCollectStartMonth,

	{entity.StateCollectStartMonth, entity.GranularityYearMonth}: entity.StateCollectEndYear,
	{entity.StateCollectStartMonth, entity.GranularityFullDate}:  entity.StateCollectStartDay,

	{entity.StateCollectStartDay, entity.GranularityFullDate}: entity.StateCollectEndYear,

	{entity.StateCollectEndYear, entity.GranularityYear}:      entity.StateChooseGroupType,
	{entity.StateCollectEndYear, entity.GranularityYearMonth}: entity.StateCollectEndMonth,
	{entity.StateCollectEndYear, entity.GranularityFullDate}:  entity.StateCollectEndMonth,

	{entity.StateCollectEndMonth, entity.GranularityYearMonth}: entity.StateChooseGroupType,
	{entity.StateCollectEndMonth, entity.GranularityFullDate}:  entity.StateCollectEndDay,

	{entity.StateCollectEndDay, entity.GranularityFullDate}: entity.StateChooseGroupType,
}

// nextState resolves the follow-up state for a temporal collection step.
// A missing entry means the caller drove the session out of order.
func nextState(state entity.ReportState, granularity entity.Granularity) (entity.ReportState, bool) {
	next, ok := transitions[transitionKey{state: state, granularity: granularity}]
	return next, ok
}

// prompts holds the user-facing text emitted when a state is entered.
var prompts = map[entity.ReportState]string{
	entity.StateChooseGranularity: "Выберите точность периода: только год, год и месяц или полная дата.",
	entity.StateCollectStartYear:  "Выберите год начала периода:",
	entity.StateCollectStartMonth: "Выберите месяц начала периода:",
	entity.StateCollectStartDay:   "Выберите день начала периода:",
	entity.StateCollectEndYear:    "Выберите год конца периода:",
	entity.StateCollectEndMonth:   "Выберите месяц конца периода:",
	entity.StateCollectEndDay:     "Выберите день конца периода:",
	entity.StateChooseGroupType:   "Выберите группировку отчета: по статьям или по периодам.",
	entity.StateChooseSubPeriod:   "Выберите разбивку периода: по годам или по месяцам.",
	entity.StateChooseFormat:      "Выберите формат файла отчета:",
}

// Prompt returns the dialogue text for the given state.
func Prompt(state entity.ReportState) string {
	return prompts[state]
}
