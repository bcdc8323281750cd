// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DivergenceRecordsColumns holds the columns for the "divergence_records" table.
	DivergenceRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "similarity", Type: field.TypeFloat64},
		{Name: "threshold", Type: field.TypeFloat64},
		{Name: "alert_triggered", Type: field.TypeBool, Default: false},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "perturbations", Type: field.TypeJSON, Nullable: true},
		{Name: "primary_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "shadow_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// DivergenceRecordsTable holds the schema information for the "divergence_records" table.
	DivergenceRecordsTable = &schema.Table{
		Name:       "divergence_records",
		Columns:    DivergenceRecordsColumns,
		PrimaryKey: []*schema.Column{DivergenceRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "divergence_records_recon_sessions_divergence_records",
				Columns:    []*schema.Column{DivergenceRecordsColumns[11]},
				RefColumns: []*schema.Column{ReconSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "divergencerecord_session_id",
				Unique:  false,
				Columns: []*schema.Column{DivergenceRecordsColumns[11]},
			},
			{
				Name:    "divergencerecord_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DivergenceRecordsColumns[1], DivergenceRecordsColumns[10]},
			},
			{
				Name:    "divergencerecord_alert_triggered",
				Unique:  false,
				Columns: []*schema.Column{DivergenceRecordsColumns[4]},
			},
		},
	}
	// FeedbackSamplesColumns holds the columns for the "feedback_samples" table.
	FeedbackSamplesColumns = []*schema.Column{
		{Name: "sample_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "similarity", Type: field.TypeFloat64},
		{Name: "threshold", Type: field.TypeFloat64},
		{Name: "was_alert", Type: field.TypeBool, Default: false},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"unlabeled", "correct", "false_positive", "false_negative"}, Default: "unlabeled"},
		{Name: "reviewer", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "labeled_at", Type: field.TypeTime, Nullable: true},
		{Name: "session_id", Type: field.TypeString},
	}
	// FeedbackSamplesTable holds the schema information for the "feedback_samples" table.
	FeedbackSamplesTable = &schema.Table{
		Name:       "feedback_samples",
		Columns:    FeedbackSamplesColumns,
		PrimaryKey: []*schema.Column{FeedbackSamplesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedback_samples_recon_sessions_feedback_samples",
				Columns:    []*schema.Column{FeedbackSamplesColumns[9]},
				RefColumns: []*schema.Column{ReconSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedbacksample_session_id",
				Unique:  true,
				Columns: []*schema.Column{FeedbackSamplesColumns[9]},
			},
			{
				Name:    "feedbacksample_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbackSamplesColumns[1], FeedbackSamplesColumns[7]},
			},
			{
				Name:    "feedbacksample_outcome",
				Unique:  false,
				Columns: []*schema.Column{FeedbackSamplesColumns[5]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "progress_events_recon_sessions_progress_events",
				Columns:    []*schema.Column{ProgressEventsColumns[5]},
				RefColumns: []*schema.Column{ReconSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_channel_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[1], ProgressEventsColumns[0]},
			},
			{
				Name:    "progressevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[5]},
			},
			{
				Name:    "progressevent_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[4]},
			},
		},
	}
	// ReconSessionsColumns holds the columns for the "recon_sessions" table.
	ReconSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "document_bundle", Type: field.TypeString, Size: 2147483647},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "cancelling", "matched", "discrepancy_found", "divergence_alert", "exception", "failed", "cancelled"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "verdict", Type: field.TypeJSON, Nullable: true},
		{Name: "verdict_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "state_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "session_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// ReconSessionsTable holds the schema information for the "recon_sessions" table.
	ReconSessionsTable = &schema.Table{
		Name:       "recon_sessions",
		Columns:    ReconSessionsColumns,
		PrimaryKey: []*schema.Column{ReconSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reconsession_status",
				Unique:  false,
				Columns: []*schema.Column{ReconSessionsColumns[5]},
			},
			{
				Name:    "reconsession_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{ReconSessionsColumns[1]},
			},
			{
				Name:    "reconsession_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ReconSessionsColumns[5], ReconSessionsColumns[6]},
			},
			{
				Name:    "reconsession_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{ReconSessionsColumns[1], ReconSessionsColumns[5]},
			},
			{
				Name:    "reconsession_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{ReconSessionsColumns[5], ReconSessionsColumns[16]},
			},
			{
				Name:    "reconsession_tenant_id_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{ReconSessionsColumns[1], ReconSessionsColumns[4]},
			},
			{
				Name:    "reconsession_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ReconSessionsColumns[17]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// StageExecutionsColumns holds the columns for the "stage_executions" table.
	StageExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "stage", Type: field.TypeString},
		{Name: "stage_index", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "active", "completed", "failed", "timed_out", "cancelled", "skipped"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "degraded", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString},
	}
	// StageExecutionsTable holds the schema information for the "stage_executions" table.
	StageExecutionsTable = &schema.Table{
		Name:       "stage_executions",
		Columns:    StageExecutionsColumns,
		PrimaryKey: []*schema.Column{StageExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_executions_recon_sessions_stage_executions",
				Columns:    []*schema.Column{StageExecutionsColumns[10]},
				RefColumns: []*schema.Column{ReconSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageexecution_session_id_stage_index",
				Unique:  true,
				Columns: []*schema.Column{StageExecutionsColumns[10], StageExecutionsColumns[2]},
			},
			{
				Name:    "stageexecution_session_id_stage",
				Unique:  false,
				Columns: []*schema.Column{StageExecutionsColumns[10], StageExecutionsColumns[1]},
			},
			{
				Name:    "stageexecution_status",
				Unique:  false,
				Columns: []*schema.Column{StageExecutionsColumns[3]},
			},
		},
	}
	// WorkpapersColumns holds the columns for the "workpapers" table.
	WorkpapersColumns = []*schema.Column{
		{Name: "workpaper_id", Type: field.TypeString, Unique: true},
		{Name: "html", Type: field.TypeString, Size: 2147483647},
		{Name: "sections", Type: field.TypeJSON, Nullable: true},
		{Name: "citation_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// WorkpapersTable holds the schema information for the "workpapers" table.
	WorkpapersTable = &schema.Table{
		Name:       "workpapers",
		Columns:    WorkpapersColumns,
		PrimaryKey: []*schema.Column{WorkpapersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "workpapers_recon_sessions_workpaper",
				Columns:    []*schema.Column{WorkpapersColumns[5]},
				RefColumns: []*schema.Column{ReconSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "workpaper_session_id",
				Unique:  true,
				Columns: []*schema.Column{WorkpapersColumns[5]},
			},
			{
				Name:    "workpaper_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkpapersColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DivergenceRecordsTable,
		FeedbackSamplesTable,
		ProgressEventsTable,
		ReconSessionsTable,
		StageExecutionsTable,
		WorkpapersTable,
	}
)

func init() {
	DivergenceRecordsTable.ForeignKeys[0].RefTable = ReconSessionsTable
	FeedbackSamplesTable.ForeignKeys[0].RefTable = ReconSessionsTable
	ProgressEventsTable.ForeignKeys[0].RefTable = ReconSessionsTable
	StageExecutionsTable.ForeignKeys[0].RefTable = ReconSessionsTable
	WorkpapersTable.ForeignKeys[0].RefTable = ReconSessionsTable
}
