// Package writers turns translated repeat groups into files.
//
// Design:
//   - Output owns the text layouts; writers owns files, compression, and the
//     format registry.
//   - Pipeline stays orchestration-only and never touches files.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
