package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/attendance-insight-go/internal/config"
	"github.com/cmlabs-hris/attendance-insight-go/internal/domain/ledger"
	"github.com/cmlabs-hris/attendance-insight-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/attendance-insight-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-insight-go/internal/pkg/validator"
	"github.com/cmlabs-hris/attendance-insight-go/internal/repository/memory"
	"github.com/cmlabs-hris/attendance-insight-go/internal/repository/postgresql"
	appraisalService "github.com/cmlabs-hris/attendance-insight-go/internal/service/appraisal"
	"github.com/cmlabs-hris/attendance-insight-go/internal/service/ingest"
	ledgerService "github.com/cmlabs-hris/attendance-insight-go/internal/service/ledger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var snapshotRepo ledger.SnapshotRepository
	switch cfg.Store.Type {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to connect to database: ", err)
		}
		if err := postgresql.Migrate(context.Background(), db); err != nil {
			log.Fatal("Failed to migrate snapshot tables: ", err)
		}
		snapshotRepo = postgresql.NewSnapshotRepository(db)
	default:
		snapshotRepo = memory.NewSnapshotRepository()
	}

	normalizer := ingest.NewNormalizer()
	ledgerSvc := ledgerService.NewLedgerService(snapshotRepo, normalizer, defaultRules(cfg.Rules))
	appraisalSvc := appraisalService.NewAppraisalService(snapshotRepo)

	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	appraisalHandler := appHTTP.NewAppraisalHandler(appraisalSvc)

	router := appHTTP.NewRouter(cfg.App.Env, ledgerHandler, appraisalHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// defaultRules builds the per-run rule defaults from configuration, falling
// back to the fixture office list and holiday calendar.
func defaultRules(rules config.RulesConfig) ledger.BusinessRules {
	// Already validated during config.Load.
	threshold, _ := validator.ParseClock(rules.LateThreshold)

	office := rules.OfficeLocations
	if len(office) == 0 {
		office = fixtures.DefaultOfficeLocations()
	}

	return ledger.BusinessRules{
		StandardDailyHours:   rules.StandardDailyHours,
		LateThresholdMinutes: threshold,
		OvertimeHourlyRate:   rules.OvertimeHourlyRate,
		OfficeLocations:      office,
		Holidays:             fixtures.Holidays2025(),
	}
}
