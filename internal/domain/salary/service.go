package salary

import "context"

type SalaryService interface {
	PreviewSalary(ctx context.Context, req SalaryPeriodRequest) (SalaryPreviewResponse, error)
	GenerateSalary(ctx context.Context, req SalaryPeriodRequest) (SalaryResponse, error)
	GetSalaryHistory(ctx context.Context, employeeID string) ([]SalaryResponse, error)
	SendSalarySMS(ctx context.Context, salaryID string) (SalaryResponse, error)
	ExportSalaryRegister(ctx context.Context, month, year int) (ExportFile, error)
}
