package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"examsense/internal/cli"
	"examsense/internal/logger"
)

// @title ExamSense Assessment API
// @version 1.0
// @description Attempt lifecycle and scoring service: timed assessments for anonymous participants, duplicate-safe submission, and optional behavioral analysis sessions.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	if err := cli.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
