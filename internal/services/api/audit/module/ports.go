package module

import (
	auditdom "salesops/internal/services/api/audit/domain"
)

// Ports exposes the audit module's cross-module surface
type Ports struct {
	// Recorder lets other modules append to the audit trail
	Recorder auditdom.RecorderPort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
