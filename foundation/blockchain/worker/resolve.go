package worker

// resolveOperations handles consensus resolution on an interval and when
// signalled.
func (w *Worker) resolveOperations() {
	w.evHandler("worker: resolveOperations: G started")
	defer w.evHandler("worker: resolveOperations: G completed")

	for {
		select {
		case <-w.tick():
			if !w.isShutdown() {
				w.runResolveOperation()
			}
		case <-w.resolve:
			if !w.isShutdown() {
				w.runResolveOperation()
			}
		case <-w.shut:
			w.evHandler("worker: resolveOperations: received shut signal")
			return
		}
	}
}

// runResolveOperation asks the known peers for their chains and adopts the
// longest valid one.
func (w *Worker) runResolveOperation() {
	w.evHandler("worker: runResolveOperation: started")
	defer w.evHandler("worker: runResolveOperation: completed")

	replaced, err := w.state.Resolve(w.ctx)
	if err != nil {
		w.evHandler("worker: runResolveOperation: ERROR: %s", err)
		return
	}

	if replaced {
		w.evHandler("worker: runResolveOperation: chain replaced: length[%d]", w.state.QueryChainLength())
	}
}
