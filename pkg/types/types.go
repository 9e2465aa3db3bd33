package types

// NetStatus is a read-only projection of a net instance, served by the
// operational HTTP endpoints.
type NetStatus struct {
	// Lifecycle state: constructed | ready | closed.
	State string `json:"state"`
	// Path of the serialized engine plan backing this net.
	PlanPath string `json:"plan_path"`
	// Device index the net is bound to.
	GPUID int `json:"gpu_id"`
	// Output binding name resolved at initialization.
	OutputName string `json:"output_name"`
	// Completed forward passes since initialization.
	ForwardPasses uint64 `json:"forward_passes"`
	// Last error observed, empty when healthy.
	Err string `json:"err,omitempty"`
}

// StatusResponse is the /status payload.
type StatusResponse struct {
	Net     NetStatus `json:"net"`
	Version string    `json:"version,omitempty"`
}
