package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schedulecreator/internal/catalog"
	"schedulecreator/internal/config"
	"schedulecreator/internal/milp"
	"schedulecreator/internal/model"
	"schedulecreator/internal/render"
)

var (
	validSolvers = []string{"cbc", "glpk"}
	solvers      = map[string]func(cfg config.Config) milp.Solver{
		"cbc":  func(cfg config.Config) milp.Solver { return milp.NewCbcSolver(cfg.CbcPath) },
		"glpk": func(cfg config.Config) milp.Solver { return milp.NewGlpkSolver(cfg.GlpsolPath) },
	}
)

func main() {
	// Define arguments
	dataPtr := flag.String("data", "", "Path to the directory holding Teachers.csv, Classes.csv and Slots.csv")
	inputPtr := flag.String("input", "", "Path to a JSON catalog file (alternative to -data)")
	configPtr := flag.String("config", "", "Path to the JSON config file overriding the built-in coefficients and solver paths")
	solverPtr := flag.String("solver", "cbc", "MILP solver to use. Allowed values are: \"cbc\" and \"glpk\", where \"cbc\" is the default")
	timeoutPtr := flag.Duration("timeout", 0, "Optional limit on the solve (e.g. 5m); 0 means no limit")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if (*dataPtr == "") == (*inputPtr == "") {
		log.Fatal("exactly one of -data or -input must be specified")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run", uuid.NewString()))

	cfg, err := config.Load(*configPtr)
	if err != nil {
		logger.Fatal("cannot load config", zap.Error(err))
	}

	// Load the reference catalog
	var cat *catalog.Catalog
	if *dataPtr != "" {
		cat, err = catalog.FromCsv(*dataPtr, cfg.ClassDays)
	} else {
		cat, err = catalog.FromJson(*inputPtr, cfg.ClassDays)
	}
	if err != nil {
		logger.Fatal("cannot load catalog", zap.Error(err))
	}

	// Initialize engines
	solver := solvers[solverStr](cfg)
	scheduler := model.NewScheduler(solver, cfg.Coefficients, logger)

	ctx := context.Background()
	if *timeoutPtr > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeoutPtr)
		defer cancel()
	}

	// Build the timetable
	start := time.Now()
	timetable, err := scheduler.Build(ctx, cat)

	var infeasible model.InfeasibleError
	if errors.As(err, &infeasible) {
		logger.Error("no schedule produced", zap.String("status", infeasible.Status.String()))
		os.Exit(20)
	} else if err != nil {
		logger.Fatal("an error occurred during timetable construction", zap.Error(err))
	}
	logger.Info("timetable built", zap.Duration("elapsed", time.Since(start)))

	// Verify timetable correctness
	if !scheduler.Verify(timetable, cat) {
		logger.Error("verification failed: the decoded timetable violates the scheduling rules")
		os.Exit(15)
	}

	fmt.Print(render.Results(timetable, cat))
	fmt.Printf("\n%v variables\n", timetable.Variables)
	fmt.Printf("%v constraints\n", timetable.Constraints)
}
