package domain

// WorkflowStep is one step of the sales/production workflow as configured by
// the surrounding application. Consumed read-only; the engine never mutates
// or persists step definitions.
type WorkflowStep struct {
	ID              string
	Name            string
	OwnerRole       string
	SLABusinessDays int
	Stage           int
}

// StageBadge maps a workflow step to the label + severity pair the stage
// column renders. Severity follows the owning role so every screen colours
// stages the same way.
func StageBadge(step WorkflowStep) Chip {
	severity := SeverityNeutral
	switch step.OwnerRole {
	case "vendas":
		severity = SeverityInfo
	case "projetista", "compras", "fabrica":
		severity = SeverityWarning
	case "logistica", "montagem", "pos_montagem", "assistencia":
		severity = SeveritySuccess
	}
	return Chip{Label: step.Name, Severity: severity}
}

// StepByID finds a step definition in the configured table.
func StepByID(steps []WorkflowStep, id string) (WorkflowStep, bool) {
	for _, step := range steps {
		if step.ID == id {
			return step, true
		}
	}
	return WorkflowStep{}, false
}
