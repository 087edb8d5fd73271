package app

import (
	"go-hrm/internal/contract"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/leave"
	"go-hrm/internal/messaging/kafka/producer"
	"go-hrm/internal/overtime"
	"go-hrm/internal/position"
	"go-hrm/internal/query"
	"go-hrm/internal/store"
	"go-hrm/internal/timekeeping"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Registry holds every application service, built once at startup.
type Registry struct {
	Department  department.Service
	Position    position.Service
	Employee    employee.Service
	Contract    contract.Service
	Leave       leave.Service
	Overtime    overtime.Service
	Timekeeping timekeeping.Service
	Query       *query.Service
}

func registerModules(st *store.Store, writer *kafkago.Writer, logger *zap.Logger) *Registry {
	var (
		employeePublisher employee.EventPublisher
		decisionPublisher *producer.DecisionPublisher
	)
	if writer != nil {
		employeePublisher = employee.NewKafkaEventPublisher(writer)
		decisionPublisher = producer.NewDecisionPublisher(writer)
	}

	reg := &Registry{
		Department:  department.NewService(st, logger),
		Position:    position.NewService(st, logger),
		Contract:    contract.NewService(st, logger),
		Timekeeping: timekeeping.NewService(st, logger),
		Query:       query.NewService(st),
	}

	if decisionPublisher != nil {
		reg.Employee = employee.NewService(st, employeePublisher, logger)
		reg.Leave = leave.NewService(st, decisionPublisher, logger)
		reg.Overtime = overtime.NewService(st, decisionPublisher, logger)
	} else {
		reg.Employee = employee.NewService(st, nil, logger)
		reg.Leave = leave.NewService(st, nil, logger)
		reg.Overtime = overtime.NewService(st, nil, logger)
	}

	return reg
}
