// Copyright (c) 2026, The OTNS Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

// Package progctx implements the lifetime context of the linksim program: cancellation on
// exit or signal, cleanup functions, and tracking of the goroutines to wait for.
package progctx

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/simonlingoogle/go-simplelogger"
)

// ProgCtx represents the context of the program during its lifetime.
type ProgCtx struct {
	context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	lock     sync.Mutex
	routines map[string]int
	deferred []func()
}

// New creates a new ProgCtx from the parent context.
func New(parent context.Context) *ProgCtx {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &ProgCtx{
		Context:  ctx,
		cancel:   cancel,
		routines: map[string]int{},
	}
}

// Cancel cancels the program context, logging the reason. Only the first call has effect;
// it runs the deferred functions in reverse order of registration.
func (ctx *ProgCtx) Cancel(reason interface{}) {
	ctx.lock.Lock()
	if ctx.Err() != nil {
		ctx.lock.Unlock()
		return
	}
	ctx.cancel()
	deferred := ctx.deferred
	ctx.deferred = nil
	ctx.lock.Unlock()

	if err, ok := reason.(error); ok && err != nil {
		simplelogger.Errorf("program exit: %v", err)
	} else if reason != nil {
		simplelogger.Infof("program exit: %v", reason)
	} else {
		simplelogger.Debugf("program exit")
	}

	for i := len(deferred) - 1; i >= 0; i-- {
		deferred[i]()
	}
}

// Defer registers f to be called when the context is cancelled.
func (ctx *ProgCtx) Defer(f func()) {
	ctx.lock.Lock()
	defer ctx.lock.Unlock()
	if ctx.Err() != nil {
		panic(errors.Errorf("can not Defer after context is done"))
	}
	ctx.deferred = append(ctx.deferred, f)
}

// WaitAdd adds delta goroutines of the given name to wait for.
func (ctx *ProgCtx) WaitAdd(name string, delta int) {
	ctx.lock.Lock()
	ctx.routines[name] += delta
	ctx.lock.Unlock()
	ctx.wg.Add(delta)
}

// WaitDone notifies that a goroutine of the given name has finished.
func (ctx *ProgCtx) WaitDone(name string) {
	ctx.lock.Lock()
	if ctx.routines[name] <= 0 {
		ctx.lock.Unlock()
		simplelogger.Panicf("routine %s is not running, should not call WaitDone", name)
		return
	}
	ctx.routines[name] -= 1
	ctx.lock.Unlock()
	ctx.wg.Done()
}

// WaitCount returns the number of goroutines to wait for.
func (ctx *ProgCtx) WaitCount() int {
	ctx.lock.Lock()
	defer ctx.lock.Unlock()
	total := 0
	for _, c := range ctx.routines {
		total += c
	}
	return total
}

// Wait waits for all goroutines to finish.
func (ctx *ProgCtx) Wait() {
	simplelogger.Debugf("program context waiting for %d routines", ctx.WaitCount())
	ctx.wg.Wait()
}
