// Package vllm is a resilient client for vLLM-compatible completion
// endpoints.
//
// A Client is constructed once from a validated Config and is safe for
// concurrent use. It offers two delivery modes: Complete performs a blocking
// call with bounded retry and exponential backoff, and Stream decodes a
// server-sent-event response into a lazy sequence of text fragments.
//
//	client, err := vllm.New(vllm.Config{
//		Model:   "meta-llama/Llama-3.1-8B-Instruct",
//		BaseURL: "http://localhost:8000",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	text, err := client.Complete(ctx, "Explain quantization.", nil)
//
// Generation parameters are layered: instance defaults set at construction,
// overridden per call by a Params value. Named presets (Preset, Presets)
// provide ready-made override bundles.
package vllm
