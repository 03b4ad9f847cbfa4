package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/zenith-hr/workforce-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Service sends transactional mail for attendance and leave events.
type Service interface {
	SendLateArrival(to, employeeName, date string, lateByMinutes int) error
	SendShortHours(to, employeeName, date string, workedHours, targetHours float64) error
	SendLeaveApplication(to, approverName, employeeName, leaveType, startDate, endDate string, totalDays float64) error
	SendLeaveStatus(to, employeeName, leaveType, startDate, endDate, status string, comments *string) error
	SendPayslipGenerated(to, employeeName, month string, year int) error
}

type serviceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewService(cfg config.SMTPConfig) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &serviceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type lateArrivalData struct {
	EmployeeName  string
	Date          string
	LateByMinutes int
}

func (s *serviceImpl) SendLateArrival(to, employeeName, date string, lateByMinutes int) error {
	data := lateArrivalData{
		EmployeeName:  employeeName,
		Date:          date,
		LateByMinutes: lateByMinutes,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "late_arrival.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Late Arrival Recorded - %s", date), body.String())
}

type shortHoursData struct {
	EmployeeName string
	Date         string
	WorkedHours  string
	TargetHours  string
}

func (s *serviceImpl) SendShortHours(to, employeeName, date string, workedHours, targetHours float64) error {
	data := shortHoursData{
		EmployeeName: employeeName,
		Date:         date,
		WorkedHours:  fmt.Sprintf("%.2f", workedHours),
		TargetHours:  fmt.Sprintf("%.1f", targetHours),
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "short_hours.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Short Working Hours - %s", date), body.String())
}

type leaveApplicationData struct {
	ApproverName string
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	TotalDays    float64
}

func (s *serviceImpl) SendLeaveApplication(to, approverName, employeeName, leaveType, startDate, endDate string, totalDays float64) error {
	data := leaveApplicationData{
		ApproverName: approverName,
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		TotalDays:    totalDays,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_application.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Leave Application from %s", employeeName), body.String())
}

type leaveStatusData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Status       string
	Comments     string
}

func (s *serviceImpl) SendLeaveStatus(to, employeeName, leaveType, startDate, endDate, status string, comments *string) error {
	data := leaveStatusData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
	}
	if comments != nil {
		data.Comments = *comments
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_status.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your Leave Application Was %s", status), body.String())
}

type payslipGeneratedData struct {
	EmployeeName string
	Month        string
	Year         int
}

func (s *serviceImpl) SendPayslipGenerated(to, employeeName, month string, year int) error {
	data := payslipGeneratedData{
		EmployeeName: employeeName,
		Month:        month,
		Year:         year,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "payslip_generated.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Payslip Available - %s %d", month, year), body.String())
}

func (s *serviceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.User == "" || s.cfg.From == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
