// Package observable provides typed values and containers that emit change
// notifications when mutated.
//
// An observable property carries a name and publishes a [Change] through a
// sink installed by the subject that owns it (see the model package). There
// are four property shapes:
//
//   - [Value] holds a single typed value and emits an assign change when set.
//   - [List] and [Map] are containers that bracket every structural mutation
//     with a before change and an after change.
//   - [Signal] retains no state and exists only to fire events.
//
// Properties created directly (without a subject) mutate silently. Most
// programs declare them through the model package, which binds the sink and
// fans changes out to registered observers:
//
//	m := model.New()
//	counter := model.Value(m, "counter", 0)
//	counter.Set(1) // observers of "counter" are notified
package observable
