package domain

import "github.com/vfg2006/rh-dashboard-api/pkg/tabular"

// Employee é um registro do quadro de efetivo, já decodificado e validado
type Employee struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Position     string `json:"position"`
	ContractType string `json:"contract_type"`
	Status       string `json:"status"`
}

// EmployeeFromRecord materializa o registro genérico do pipeline no tipo do domínio
func EmployeeFromRecord(record tabular.Record) Employee {
	return Employee{
		ID:           record.Get("id"),
		Name:         record.Get("name"),
		Department:   record.Get("department"),
		Position:     record.Get("position"),
		ContractType: record.Get("contract_type"),
		Status:       record.Get("status"),
	}
}

// EmployeesFromRecords converte o conjunto completo preservando a ordem
func EmployeesFromRecords(records []tabular.Record) []Employee {
	employees := make([]Employee, 0, len(records))

	for _, record := range records {
		employees = append(employees, EmployeeFromRecord(record))
	}

	return employees
}
