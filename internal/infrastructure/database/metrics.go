package database

import "github.com/prometheus/client_golang/prometheus"

// RegisterPoolMetrics exports pool gauges read on every scrape
func RegisterPoolMetrics(reg prometheus.Registerer, db *PostgresDB) error {
	gauge := func(name, help string, read func(*PoolStats) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "catalog",
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 {
			stats, err := db.Stats()
			if err != nil {
				return 0
			}
			return read(stats)
		})
	}

	collectors := []prometheus.Collector{
		gauge("acquired_conns", "Connections currently in use.", func(s *PoolStats) float64 { return float64(s.AcquiredConns) }),
		gauge("idle_conns", "Idle connections.", func(s *PoolStats) float64 { return float64(s.IdleConns) }),
		gauge("total_conns", "Open connections.", func(s *PoolStats) float64 { return float64(s.TotalConns) }),
		gauge("max_conns", "Configured pool size.", func(s *PoolStats) float64 { return float64(s.MaxConns) }),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
