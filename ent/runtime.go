// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/promptascent/ent/attemptevent"
	"github.com/abhisek/promptascent/ent/badgeevent"
	"github.com/abhisek/promptascent/ent/llmrequestevent"
	"github.com/abhisek/promptascent/ent/pointsevent"
	"github.com/abhisek/promptascent/ent/runevent"
	"github.com/abhisek/promptascent/ent/schema"
	"github.com/abhisek/promptascent/ent/snapshot"
	"github.com/abhisek/promptascent/ent/stageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescRunID is the schema descriptor for run_id field.
	attempteventDescRunID := attempteventFields[0].Descriptor()
	// attemptevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	attemptevent.RunIDValidator = attempteventDescRunID.Validators[0].(func(string) error)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[1].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescLessonID is the schema descriptor for lesson_id field.
	attempteventDescLessonID := attempteventFields[2].Descriptor()
	// attemptevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	attemptevent.LessonIDValidator = attempteventDescLessonID.Validators[0].(func(string) error)
	// attempteventDescItemID is the schema descriptor for item_id field.
	attempteventDescItemID := attempteventFields[3].Descriptor()
	// attemptevent.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attemptevent.ItemIDValidator = attempteventDescItemID.Validators[0].(func(string) error)
	// attempteventDescItemKind is the schema descriptor for item_kind field.
	attempteventDescItemKind := attempteventFields[4].Descriptor()
	// attemptevent.ItemKindValidator is a validator for the "item_kind" field. It is called by the builders before save.
	attemptevent.ItemKindValidator = attempteventDescItemKind.Validators[0].(func(string) error)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescUserID is the schema descriptor for user_id field.
	badgeeventDescUserID := badgeeventFields[0].Descriptor()
	// badgeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	badgeevent.UserIDValidator = badgeeventDescUserID.Validators[0].(func(string) error)
	// badgeeventDescBadgeType is the schema descriptor for badge_type field.
	badgeeventDescBadgeType := badgeeventFields[1].Descriptor()
	// badgeevent.BadgeTypeValidator is a validator for the "badge_type" field. It is called by the builders before save.
	badgeevent.BadgeTypeValidator = badgeeventDescBadgeType.Validators[0].(func(string) error)
	// badgeeventDescRarity is the schema descriptor for rarity field.
	badgeeventDescRarity := badgeeventFields[2].Descriptor()
	// badgeevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	badgeevent.RarityValidator = badgeeventDescRarity.Validators[0].(func(string) error)
	// badgeeventDescRunID is the schema descriptor for run_id field.
	badgeeventDescRunID := badgeeventFields[4].Descriptor()
	// badgeevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	badgeevent.RunIDValidator = badgeeventDescRunID.Validators[0].(func(string) error)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[5].Descriptor()
	// badgeevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	badgeevent.ReasonValidator = badgeeventDescReason.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	pointseventMixin := schema.PointsEvent{}.Mixin()
	pointseventMixinFields0 := pointseventMixin[0].Fields()
	_ = pointseventMixinFields0
	pointseventFields := schema.PointsEvent{}.Fields()
	_ = pointseventFields
	// pointseventDescTimestamp is the schema descriptor for timestamp field.
	pointseventDescTimestamp := pointseventMixinFields0[1].Descriptor()
	// pointsevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pointsevent.DefaultTimestamp = pointseventDescTimestamp.Default.(func() time.Time)
	// pointseventDescUserID is the schema descriptor for user_id field.
	pointseventDescUserID := pointseventFields[0].Descriptor()
	// pointsevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	pointsevent.UserIDValidator = pointseventDescUserID.Validators[0].(func(string) error)
	// pointseventDescDelta is the schema descriptor for delta field.
	pointseventDescDelta := pointseventFields[1].Descriptor()
	// pointsevent.DeltaValidator is a validator for the "delta" field. It is called by the builders before save.
	pointsevent.DeltaValidator = pointseventDescDelta.Validators[0].(func(int) error)
	// pointseventDescReason is the schema descriptor for reason field.
	pointseventDescReason := pointseventFields[2].Descriptor()
	// pointsevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	pointsevent.ReasonValidator = pointseventDescReason.Validators[0].(func(string) error)
	runeventMixin := schema.RunEvent{}.Mixin()
	runeventMixinFields0 := runeventMixin[0].Fields()
	_ = runeventMixinFields0
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTimestamp is the schema descriptor for timestamp field.
	runeventDescTimestamp := runeventMixinFields0[1].Descriptor()
	// runevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	runevent.DefaultTimestamp = runeventDescTimestamp.Default.(func() time.Time)
	// runeventDescRunID is the schema descriptor for run_id field.
	runeventDescRunID := runeventFields[0].Descriptor()
	// runevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	runevent.RunIDValidator = runeventDescRunID.Validators[0].(func(string) error)
	// runeventDescUserID is the schema descriptor for user_id field.
	runeventDescUserID := runeventFields[1].Descriptor()
	// runevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	runevent.UserIDValidator = runeventDescUserID.Validators[0].(func(string) error)
	// runeventDescLessonID is the schema descriptor for lesson_id field.
	runeventDescLessonID := runeventFields[2].Descriptor()
	// runevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	runevent.LessonIDValidator = runeventDescLessonID.Validators[0].(func(string) error)
	// runeventDescAction is the schema descriptor for action field.
	runeventDescAction := runeventFields[3].Descriptor()
	// runevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	runevent.ActionValidator = runeventDescAction.Validators[0].(func(string) error)
	// runeventDescItemsTotal is the schema descriptor for items_total field.
	runeventDescItemsTotal := runeventFields[4].Descriptor()
	// runevent.DefaultItemsTotal holds the default value on creation for the items_total field.
	runevent.DefaultItemsTotal = runeventDescItemsTotal.Default.(int)
	// runeventDescItemsCorrect is the schema descriptor for items_correct field.
	runeventDescItemsCorrect := runeventFields[5].Descriptor()
	// runevent.DefaultItemsCorrect holds the default value on creation for the items_correct field.
	runevent.DefaultItemsCorrect = runeventDescItemsCorrect.Default.(int)
	// runeventDescPointsEarned is the schema descriptor for points_earned field.
	runeventDescPointsEarned := runeventFields[6].Descriptor()
	// runevent.DefaultPointsEarned holds the default value on creation for the points_earned field.
	runevent.DefaultPointsEarned = runeventDescPointsEarned.Default.(int)
	// runeventDescDurationSecs is the schema descriptor for duration_secs field.
	runeventDescDurationSecs := runeventFields[7].Descriptor()
	// runevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	runevent.DefaultDurationSecs = runeventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	stageeventMixin := schema.StageEvent{}.Mixin()
	stageeventMixinFields0 := stageeventMixin[0].Fields()
	_ = stageeventMixinFields0
	stageeventFields := schema.StageEvent{}.Fields()
	_ = stageeventFields
	// stageeventDescTimestamp is the schema descriptor for timestamp field.
	stageeventDescTimestamp := stageeventMixinFields0[1].Descriptor()
	// stageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stageevent.DefaultTimestamp = stageeventDescTimestamp.Default.(func() time.Time)
	// stageeventDescUserID is the schema descriptor for user_id field.
	stageeventDescUserID := stageeventFields[0].Descriptor()
	// stageevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	stageevent.UserIDValidator = stageeventDescUserID.Validators[0].(func(string) error)
	// stageeventDescLessonID is the schema descriptor for lesson_id field.
	stageeventDescLessonID := stageeventFields[1].Descriptor()
	// stageevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	stageevent.LessonIDValidator = stageeventDescLessonID.Validators[0].(func(string) error)
	// stageeventDescStageID is the schema descriptor for stage_id field.
	stageeventDescStageID := stageeventFields[2].Descriptor()
	// stageevent.StageIDValidator is a validator for the "stage_id" field. It is called by the builders before save.
	stageevent.StageIDValidator = stageeventDescStageID.Validators[0].(func(string) error)
	// stageeventDescStatus is the schema descriptor for status field.
	stageeventDescStatus := stageeventFields[3].Descriptor()
	// stageevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	stageevent.StatusValidator = stageeventDescStatus.Validators[0].(func(string) error)
	// stageeventDescPointsEarned is the schema descriptor for points_earned field.
	stageeventDescPointsEarned := stageeventFields[4].Descriptor()
	// stageevent.DefaultPointsEarned holds the default value on creation for the points_earned field.
	stageevent.DefaultPointsEarned = stageeventDescPointsEarned.Default.(int)
	// stageeventDescRunID is the schema descriptor for run_id field.
	stageeventDescRunID := stageeventFields[5].Descriptor()
	// stageevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	stageevent.RunIDValidator = stageeventDescRunID.Validators[0].(func(string) error)
}
