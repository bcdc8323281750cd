// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/procureguard/trimatch/ent/divergencerecord"
	"github.com/procureguard/trimatch/ent/feedbacksample"
	"github.com/procureguard/trimatch/ent/progressevent"
	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/ent/schema"
	"github.com/procureguard/trimatch/ent/stageexecution"
	"github.com/procureguard/trimatch/ent/workpaper"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	divergencerecordFields := schema.DivergenceRecord{}.Fields()
	_ = divergencerecordFields
	// divergencerecordDescAlertTriggered is the schema descriptor for alert_triggered field.
	divergencerecordDescAlertTriggered := divergencerecordFields[5].Descriptor()
	// divergencerecord.DefaultAlertTriggered holds the default value on creation for the alert_triggered field.
	divergencerecord.DefaultAlertTriggered = divergencerecordDescAlertTriggered.Default.(bool)
	// divergencerecordDescDegraded is the schema descriptor for degraded field.
	divergencerecordDescDegraded := divergencerecordFields[7].Descriptor()
	// divergencerecord.DefaultDegraded holds the default value on creation for the degraded field.
	divergencerecord.DefaultDegraded = divergencerecordDescDegraded.Default.(bool)
	// divergencerecordDescCreatedAt is the schema descriptor for created_at field.
	divergencerecordDescCreatedAt := divergencerecordFields[11].Descriptor()
	// divergencerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	divergencerecord.DefaultCreatedAt = divergencerecordDescCreatedAt.Default.(func() time.Time)
	feedbacksampleFields := schema.FeedbackSample{}.Fields()
	_ = feedbacksampleFields
	// feedbacksampleDescWasAlert is the schema descriptor for was_alert field.
	feedbacksampleDescWasAlert := feedbacksampleFields[5].Descriptor()
	// feedbacksample.DefaultWasAlert holds the default value on creation for the was_alert field.
	feedbacksample.DefaultWasAlert = feedbacksampleDescWasAlert.Default.(bool)
	// feedbacksampleDescCreatedAt is the schema descriptor for created_at field.
	feedbacksampleDescCreatedAt := feedbacksampleFields[8].Descriptor()
	// feedbacksample.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbacksample.DefaultCreatedAt = feedbacksampleDescCreatedAt.Default.(func() time.Time)
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescCreatedAt is the schema descriptor for created_at field.
	progresseventDescCreatedAt := progresseventFields[4].Descriptor()
	// progressevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	progressevent.DefaultCreatedAt = progresseventDescCreatedAt.Default.(func() time.Time)
	reconsessionFields := schema.ReconSession{}.Fields()
	_ = reconsessionFields
	// reconsessionDescCreatedAt is the schema descriptor for created_at field.
	reconsessionDescCreatedAt := reconsessionFields[6].Descriptor()
	// reconsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	reconsession.DefaultCreatedAt = reconsessionDescCreatedAt.Default.(func() time.Time)
	stageexecutionFields := schema.StageExecution{}.Fields()
	_ = stageexecutionFields
	// stageexecutionDescDegraded is the schema descriptor for degraded field.
	stageexecutionDescDegraded := stageexecutionFields[8].Descriptor()
	// stageexecution.DefaultDegraded holds the default value on creation for the degraded field.
	stageexecution.DefaultDegraded = stageexecutionDescDegraded.Default.(bool)
	workpaperFields := schema.Workpaper{}.Fields()
	_ = workpaperFields
	// workpaperDescCitationCount is the schema descriptor for citation_count field.
	workpaperDescCitationCount := workpaperFields[4].Descriptor()
	// workpaper.DefaultCitationCount holds the default value on creation for the citation_count field.
	workpaper.DefaultCitationCount = workpaperDescCitationCount.Default.(int)
	// workpaperDescCreatedAt is the schema descriptor for created_at field.
	workpaperDescCreatedAt := workpaperFields[5].Descriptor()
	// workpaper.DefaultCreatedAt holds the default value on creation for the created_at field.
	workpaper.DefaultCreatedAt = workpaperDescCreatedAt.Default.(func() time.Time)
}
