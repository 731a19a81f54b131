// Package cpusched simulates a two CPU scheduler with memory gated admission.
//
// Every input record is first admitted against its memory pool, then the
// class queues are dispatched in priority order:
//
//   - priority 0 on CPU-1, first come first served
//   - priority 1 on CPU-2, shortest job first
//   - priority 2 and 3 on CPU-2, round robin with quantum 8 and 16
//
// The run produces an ordered dispatch log which the sink package renders
// into the event trace:
//
//	srv, _ := cpusched.New()
//	records, _ := ingest.New().Load(ctx, "input.txt")
//	report, _ := srv.Run(ctx, records)
//	_ = sink.New(nil).Write(ctx, "output.txt", report.Log)
package cpusched
