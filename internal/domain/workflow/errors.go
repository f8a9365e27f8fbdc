package workflow

import "errors"

var (
	ErrWorkflowNotFound = errors.New("Workflow not found")
)
