// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the commands.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteProfiles prints a profile listing using the configured output format.
func (ow *OutWriter) WriteProfiles(profiles []schema.Profile, cfg *contract.Config) error {
	return PrintProfiles(profiles, cfg)
}

// WriteProfile prints one scored or stored profile using the configured output format.
func (ow *OutWriter) WriteProfile(profile schema.Profile, cfg *contract.Config) error {
	return PrintProfile(profile, cfg)
}

// WriteDepartments prints department aggregates using the configured output format.
func (ow *OutWriter) WriteDepartments(summary schema.DepartmentSummary, cfg *contract.Config) error {
	return PrintDepartments(summary, cfg)
}

// WriteCompatibility prints department pair scores using the configured output format.
func (ow *OutWriter) WriteCompatibility(results []schema.Compatibility, cfg *contract.Config) error {
	return PrintCompatibility(results, cfg)
}

// WriteComposition prints team composition results using the configured output format.
func (ow *OutWriter) WriteComposition(results []schema.TeamComposition, cfg *contract.Config) error {
	return PrintComposition(results, cfg)
}

// WriteCommunication prints communication insights using the configured output format.
func (ow *OutWriter) WriteCommunication(results []schema.CommunicationInsight, cfg *contract.Config) error {
	return PrintCommunication(results, cfg)
}

// WriteReport prints a full analytics report using the configured output format.
func (ow *OutWriter) WriteReport(report schema.AnalyticsReport, cfg *contract.Config) error {
	return PrintReport(report, cfg)
}

// WriteStatus prints the profile store status using the configured output format.
func (ow *OutWriter) WriteStatus(status schema.StoreStatus, cfg *contract.Config) error {
	return PrintStatus(status, cfg)
}
