package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/nutrilife/booking-api/internal/domain"
)

// Pre-rendered bodies for the two notification emails. Rendering is pure
// formatting: booking in, HTML string out.

type templateData struct {
	domain.Booking
	PackageName string
	PrettyDate  string
	PrettyTime  string
}

// CustomerSubject and AdminSubject build the subject lines for a booking.
func CustomerSubject(_ *domain.Booking) string {
	return "Booking Confirmation - NutriLife Consultation"
}

func AdminSubject(b *domain.Booking) string {
	return fmt.Sprintf("New Booking: %s - %s", b.Name, b.BookingID)
}

// RenderCustomer produces the confirmation body addressed to the customer.
func RenderCustomer(b *domain.Booking) (string, error) {
	return render(customerTmpl, b)
}

// RenderAdmin produces the action-required notice for the administrator.
func RenderAdmin(b *domain.Booking) (string, error) {
	return render(adminTmpl, b)
}

func render(t *template.Template, b *domain.Booking) (string, error) {
	data := templateData{
		Booking:     *b,
		PackageName: b.Package.DisplayName(),
		PrettyDate:  prettyDate(b.Date),
		PrettyTime:  b.Timestamp.Format("Jan 2, 2006 3:04 PM"),
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func prettyDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

var customerTmpl = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #8DA399; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background-color: #F9F7F2; padding: 30px; border-radius: 0 0 10px 10px; }
        .booking-details { background-color: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .detail-row { padding: 10px 0; border-bottom: 1px solid #e0e0e0; }
        .detail-label { font-weight: bold; color: #8DA399; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Booking Confirmation</h1>
            <p>Thank you for choosing NutriLife!</p>
        </div>
        <div class="content">
            <h2>Hello {{.Name}}!</h2>
            <p>We're excited to start your wellness journey with you. Your consultation has been successfully booked.</p>

            <div class="booking-details">
                <h3 style="color: #8DA399; margin-top: 0;">Your Booking Details:</h3>
                <div class="detail-row"><span class="detail-label">Booking ID:</span> {{.BookingID}}</div>
                <div class="detail-row"><span class="detail-label">Name:</span> {{.Name}}</div>
                <div class="detail-row"><span class="detail-label">Email:</span> {{.Email}}</div>
                <div class="detail-row"><span class="detail-label">Phone:</span> {{.Phone}}</div>
                <div class="detail-row"><span class="detail-label">Preferred Date:</span> {{.PrettyDate}}</div>
                <div class="detail-row"><span class="detail-label">Selected Package:</span> {{.PackageName}}</div>
                {{if .Message}}<div class="detail-row"><span class="detail-label">Your Message:</span> {{.Message}}</div>{{end}}
            </div>

            <h3 style="color: #8DA399;">What's Next?</h3>
            <ul>
                <li>We'll contact you within 24 hours to confirm your appointment time</li>
                <li>Please prepare any health records or dietary logs you'd like to discuss</li>
                <li>Feel free to write down any questions you have for your consultation</li>
            </ul>

            <p>If you need to reschedule or have any questions, please contact us at <strong>info@nutrilife.com</strong> or call us at <strong>+1 (555) 123-4567</strong>.</p>

            <p>Looking forward to working with you!</p>
            <p><strong>The NutriLife Team</strong></p>
        </div>
        <div class="footer">
            <p>&copy; 2026 NutriLife. All rights reserved.</p>
            <p>123 Wellness St, Health City | info@nutrilife.com | +1 (555) 123-4567</p>
        </div>
    </div>
</body>
</html>
`))

var adminTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f4f4f4; }
        .header { background-color: #333333; color: white; padding: 20px; text-align: center; }
        .content { background-color: white; padding: 30px; }
        .booking-details { background-color: #F9F7F2; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #8DA399; }
        .detail-row { padding: 8px 0; }
        .detail-label { font-weight: bold; color: #8DA399; display: inline-block; width: 150px; }
        .priority { background-color: #8DA399; color: white; padding: 5px 15px; border-radius: 20px; font-size: 12px; display: inline-block; margin: 10px 0; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2>New Booking Received</h2>
        </div>
        <div class="content">
            <span class="priority">ACTION REQUIRED</span>
            <p>A new consultation booking has been received and requires your attention.</p>

            <div class="booking-details">
                <h3 style="color: #8DA399; margin-top: 0;">Booking Information:</h3>
                <div class="detail-row"><span class="detail-label">Booking ID:</span> {{.BookingID}}</div>
                <div class="detail-row"><span class="detail-label">Timestamp:</span> {{.PrettyTime}}</div>
                <div class="detail-row"><span class="detail-label">Client Name:</span> {{.Name}}</div>
                <div class="detail-row"><span class="detail-label">Email:</span> <a href="mailto:{{.Email}}">{{.Email}}</a></div>
                <div class="detail-row"><span class="detail-label">Phone:</span> <a href="tel:{{.Phone}}">{{.Phone}}</a></div>
                <div class="detail-row"><span class="detail-label">Preferred Date:</span> {{.PrettyDate}}</div>
                <div class="detail-row"><span class="detail-label">Package:</span> {{.PackageName}}</div>
                {{if .Message}}<div class="detail-row"><span class="detail-label">Message:</span><br/><div style="margin-top: 10px; padding: 15px; background-color: white; border-radius: 5px;">{{.Message}}</div></div>{{end}}
            </div>

            <h4 style="color: #333;">Next Steps:</h4>
            <ol>
                <li>Review the booking details</li>
                <li>Contact the client within 24 hours to confirm the appointment time</li>
                <li>Add the appointment to your calendar</li>
                <li>Prepare client intake forms if needed</li>
            </ol>

            <p style="margin-top: 30px; padding-top: 20px; border-top: 2px solid #8DA399;">
                <strong>Quick Actions:</strong><br/>
                Email: <a href="mailto:{{.Email}}">{{.Email}}</a><br/>
                Call: <a href="tel:{{.Phone}}">{{.Phone}}</a>
            </p>
        </div>
    </div>
</body>
</html>
`))
