// Package google provides a Gemini event producer on the Google GenAI SDK.
//
// The client streams model output as producer events: text chunks, thought
// summaries, tool call requests, and a finish marker. Conversation history
// accumulates per client, so successive sends continue one conversation.
//
// # Basic Usage
//
//	client, err := google.New(ctx, os.Getenv("GEMINI_API_KEY"),
//	    google.WithModel("gemini-2.5-flash"),
//	    google.WithTools(registry.Declarations()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stream, err := client.SendStream(ctx, []ai.Part{ai.NewTextPart("hello")}, turnID)
package google
