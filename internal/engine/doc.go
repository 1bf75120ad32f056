// Package engine drives cooperative, single-threaded simulations.
//
// A Scheduler owns an ordered set of tasks. Each call to Tick resumes every
// task that was live when the tick began exactly once, in insertion order.
// A task does one logical step of work and then yields by returning a
// Result. Tasks that report Done are dropped and never resumed again. Tasks
// spawned during a tick are appended to the set and first run on the
// following tick.
//
// Waiting is expressed by a task counting down across resumptions; nothing
// in a step may block. There is no preemption and no external cancellation:
// a task stops by reaching a terminal branch of its own logic.
//
// Loop paces ticks against the wall clock. It sleeps for whatever is left of
// the tick budget after a frame and never compresses later ticks to make up
// for an overrun.
package engine
