// Standalone smoke test for the Gemini connection. Run it once after
// setting up .env to confirm the API key actually works.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	log.Println("API Key loaded:", apiKey != "")

	ctx := context.Background()
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	log.Println("Testing Gemini...")
	resp, err := llms.GenerateFromSinglePrompt(ctx, llm, "Say hello in one sentence.")
	if err != nil {
		log.Fatal("Gemini call failed:", err)
	}
	log.Println("Response:", resp)
}
