// Package main tunes the camera damping rates so that drag and pinch
// gestures settle in a desired time, using Nelder-Mead over headless runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/pinchcam/config"
)

// EvalRecord is one row of the evaluation log.
type EvalRecord struct {
	Eval         int     `csv:"eval"`
	Fitness      float64 `csv:"fitness"`
	SwipeDamping float64 `csv:"swipe_damping"`
	PinchDamping float64 `csv:"pinch_damping"`
	SwipeSettle  float64 `csv:"swipe_settle"`
	PinchSettle  float64 `csv:"pinch_settle"`
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	swipeSettle := flag.Float64("swipe-settle", 0.5, "Desired drag settle time in seconds")
	pinchSettle := flag.Float64("pinch-settle", 0.5, "Desired pinch settle time in seconds")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if *swipeSettle <= 0 || *pinchSettle <= 0 {
		log.Fatal("settle times must be positive")
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Load base config
	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector(baseCfg)
	evaluator := NewFitnessEvaluator(params, baseCfg, Targets{Swipe: *swipeSettle, Pinch: *pinchSettle})

	// Open log file
	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()
	headerWritten := false

	evalCount := 0
	bestFitness := 1e18
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(raw)
			evalCount++

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = raw
			}

			st := evaluator.LastSettle()
			rec := []EvalRecord{{
				Eval:         evalCount,
				Fitness:      fitness,
				SwipeDamping: raw[0],
				PinchDamping: raw[1],
				SwipeSettle:  st.Swipe,
				PinchSettle:  st.Pinch,
			}}
			if headerWritten {
				err = gocsv.MarshalWithoutHeaders(rec, logFile)
			} else {
				err = gocsv.Marshal(rec, logFile)
				headerWritten = true
			}
			if err != nil {
				log.Printf("failed to write eval log: %v", err)
			}

			fmt.Printf("Eval %d/%d: swipe=%.3fs pinch=%.3fs damping=(%.2f, %.2f) fitness=%.5f (best=%.5f)\n",
				evalCount, *maxEvals, st.Swipe, st.Pinch, raw[0], raw[1], fitness, bestFitness)
			return fitness
		},
	}

	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-6,
			Iterations: 20,
		},
	}
	method := &optimize.NelderMead{SimplexSize: 0.2}

	initX := params.Normalize(params.DefaultVector())
	fmt.Printf("Tuning %d parameters toward swipe=%.2fs pinch=%.2fs, max_evals=%d\n",
		params.Dim(), *swipeSettle, *pinchSettle, *maxEvals)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	// Use best params found (may be from any evaluation, not just final)
	if bestParams == nil && result != nil {
		bestParams = params.Clamp(params.Denormalize(result.X))
	}
	if bestParams == nil {
		log.Fatal("no evaluations completed")
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, time.Since(startTime).Round(time.Millisecond))
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s (%s): %.4f\n", spec.Name, spec.Path, bestParams[i])
	}

	// Save best config
	bestCfg := *baseCfg
	params.ApplyToConfig(&bestCfg, bestParams)
	if err := bestCfg.Validate(); err != nil {
		log.Fatalf("tuned config invalid: %v", err)
	}

	configOutPath := filepath.Join(*outputDir, "tuned_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		log.Printf("failed to write tuned config: %v", err)
	} else {
		fmt.Printf("\nTuned config saved to: %s\n", configOutPath)
	}
}
