package worker

// Sync brings this node up to the longest valid chain known to its peers
// before any background work starts.
func (w *Worker) Sync() {
	w.evHandler("worker: sync: started")
	defer w.evHandler("worker: sync: completed")

	if len(w.state.RetrieveKnownPeers()) == 0 {
		w.evHandler("worker: sync: no known peers")
		return
	}

	w.runResolveOperation()
}
