// Package prv turns tabular sensor-telemetry rows into the legacy PRV
// fixed-column-width record format.
//
// Each input row becomes one output record: a fixed-pattern header line
// followed by one or more fixed-width continuation lines carrying the row's
// 22 sensor values. Continuation layout is driven by a layout.Schema; once
// the schema's lines are exhausted the encoder falls back to a hard-coded
// span set, six sensors per line.
//
// Rows sharing an entity key (Program, PTT) form a numbered message
// sequence; the Sequencer hands out the 1-based index stamped into each
// header. Sequencing state is scoped to a conversion run, never global.
package prv
