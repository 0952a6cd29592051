// Package services defines the failure taxonomy shared by the pipeline and
// the external tool clients.
//
// Every failure a run can surface is tagged with one of the exported sentinel
// errors so callers can classify it with errors.Is without inspecting message
// strings: configuration problems, tools that could not be launched, tools
// that ran and failed, artifacts missing after a nominally successful stage,
// and intermediate cleanup failures.
package services
