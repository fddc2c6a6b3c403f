// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package concurrency implements the blocking synchronization objects of
// hioload-sync on top of a single primitive, Condition (one mutex plus one
// condition variable):
//
//   - ConditionalAccess: writer-preferring shared/exclusive scheduler
//   - ConditionalLock: its re-entrant variant with share upgrade/downgrade
//   - RWLock: timed read/write lock with writer re-entrancy
//   - RecursiveMutex, Semaphore, Barrier, TimedEvent, Mutex
//   - ExclusiveGuard and SharedGuard scoped helpers
//
// None of them depends on a platform rwlock, semaphore or recursive mutex.
// Blocking is real goroutine parking; a timeout is the only way to interrupt
// a waiter, and a timed-out call leaves every counter as it found it.
package concurrency
