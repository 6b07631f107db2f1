package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                          int
	RoundRobinTimeQuantum         int
	PriorityRoundRobinTimeQuantum int
	PriorityRoundRobinAgingFactor int
	GeneratorMaxProcesses         int
}

var once sync.Once
var config *SchedulerConfig

func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalln(err)
		}
		config = &SchedulerConfig{}
		config.Port = viper.GetInt("port")
		config.RoundRobinTimeQuantum = viper.GetInt("scheduler.round_robin.time_quantum")
		config.PriorityRoundRobinTimeQuantum = viper.GetInt("scheduler.priority_round_robin.time_quantum")
		config.PriorityRoundRobinAgingFactor = viper.GetInt("scheduler.priority_round_robin.aging_factor")
		config.GeneratorMaxProcesses = viper.GetInt("scheduler.generator.max_processes")
	})

	return config
}
