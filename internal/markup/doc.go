// Package markup turns configuration records into React/JSX source for a
// hero or navbar block.
//
// Rendering is a pure function of the record: it never fails, never mutates
// its input and returns byte-identical output for identical input.
//
// Text and URL fields are interpolated without escaping. The output is source
// code meant to be reviewed and pasted by a person. Callers that feed it to
// anything that executes markup must escape at that boundary themselves.
package markup
