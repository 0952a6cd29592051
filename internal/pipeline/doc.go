// Package pipeline sequences the download, transcode, extract, and cleanup
// stages that turn a remote media URL into the requested local artifacts.
//
// A run advances strictly forward through planning, downloading, then either
// transcoding or extracting, and finally cleanup. Between stages the pipeline
// independently verifies that the previous stage's output file exists: a
// clean exit status from an external tool is not trusted as proof of output.
// Intermediate artifacts are deleted only after the stage consuming them has
// succeeded; on any failure the run aborts immediately and everything already
// on disk stays there for inspection.
//
// Stage transitions are reported to an injected Observer so progress
// reporting stays out of the control flow.
package pipeline
