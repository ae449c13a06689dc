package main

import (
	"os"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"benefits-engine/internal/catalogue"
	"benefits-engine/internal/engine"
	"benefits-engine/internal/handler"
	"benefits-engine/internal/valuation"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cat, err := catalogue.Load(log)
	if err != nil {
		log.Fatal("catalogue load failed", zap.Error(err))
	}

	var valuer engine.Valuer
	if url := os.Getenv("VALUATION_URL"); url != "" {
		timeout := time.Duration(envInt("VALUATION_TIMEOUT_MS", 3000)) * time.Millisecond
		valuer = valuation.New(url, timeout, log)
		log.Info("external valuation enabled", zap.Duration("timeout", timeout))
	}

	eng := engine.New(cat, valuer, log)
	h := handler.New(eng, cat, log, envInt("RATE_LIMIT_RPS", 0))

	log.Info("benefits engine starting", zap.String("port", port))
	if err := fasthttp.ListenAndServe(":"+port, h.Handle); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
