// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DivergenceRecord is the predicate function for divergencerecord builders.
type DivergenceRecord func(*sql.Selector)

// FeedbackSample is the predicate function for feedbacksample builders.
type FeedbackSample func(*sql.Selector)

// ProgressEvent is the predicate function for progressevent builders.
type ProgressEvent func(*sql.Selector)

// ReconSession is the predicate function for reconsession builders.
type ReconSession func(*sql.Selector)

// StageExecution is the predicate function for stageexecution builders.
type StageExecution func(*sql.Selector)

// Workpaper is the predicate function for workpaper builders.
type Workpaper func(*sql.Selector)
