package models

import (
	"time"

	"github.com/google/uuid"
)

// SampleShowDate returns 09:00 local time on 16 September of now's year
func SampleShowDate(now time.Time) time.Time {
	return time.Date(now.Year(), time.September, 16, 9, 0, 0, 0, time.Local)
}

// SampleMeetings returns the demo meetings shown before anything is saved
func SampleMeetings(now time.Time) []Meeting {
	show := SampleShowDate(now)

	return []Meeting{
		{
			ID:          uuid.New().String(),
			Title:       "NorthBridge + Commercient intro",
			Description: "Explore reseller fit; prioritize Zoho + Monday integrations.",
			Location:    "Hall B – Meeting Room 3",
			Booth:       "B122",
			Start:       show,
			End:         show.Add(time.Hour),
			Attendees: []Attendee{{
				ID:       uuid.New().String(),
				Name:     "Chris Williams",
				Title:    "VP Partnerships",
				Company:  "NorthBridge",
				LinkedIn: "https://www.linkedin.com/in/example-chris",
				PhotoURL: "https://i.pravatar.cc/160?img=12",
				Notes:    "Loves concise dashboards; ask about Zoho practice.",
			}},
			TalkingPoints: "15% target share from one ecosystem; co-selling playbook; partner portal access.",
			PrepChecklist: "Review Zoho marketplace listing; pull 2 case studies; confirm NDA status.",
		},
		{
			ID:          uuid.New().String(),
			Title:       "Protocol80 co-marketing sprint",
			Description: "Finalize webinar topics and case study pipeline.",
			Location:    "Expo Café (near Hall A)",
			Booth:       "A210",
			Start:       show.Add(2 * time.Hour),
			End:         show.Add(3 * time.Hour),
			Attendees: []Attendee{{
				ID:       uuid.New().String(),
				Name:     "Amanda Lee",
				Title:    "Head of Marketing",
				Company:  "Protocol80",
				LinkedIn: "https://www.linkedin.com/in/example-amanda",
				PhotoURL: "https://i.pravatar.cc/160?img=32",
				Notes:    "Interested in co-marketing webinars and case studies.",
			}},
			TalkingPoints: "Partner Spotlight Webinar; co-branded email templates; design resources.",
			PrepChecklist: "Bring sample creative; align on audience; set metrics.",
		},
		{
			ID:          uuid.New().String(),
			Title:       "CloudTrailz technical sync",
			Description: "Deep-dive NetSuite<->HubSpot patterns; managed custom objects beta lessons.",
			Location:    "Booth C341",
			Booth:       "C341",
			Start:       show.Add(4 * time.Hour),
			End:         show.Add(5 * time.Hour),
			Attendees: []Attendee{{
				ID:       uuid.New().String(),
				Name:     "Hudson Carter",
				Title:    "Solutions Architect",
				Company:  "CloudTrailz",
				LinkedIn: "https://www.linkedin.com/in/example-hudson",
				PhotoURL: "https://i.pravatar.cc/160?img=25",
				Notes:    "Deep NetSuite background; prefers technical prep notes.",
			}},
			TalkingPoints: "QuickBooks Desktop beta then pivot to NetSuite/Intacct; out-of-the-box industry apps.",
			PrepChecklist: "Open architecture diagram; confirm data model mapping doc.",
		},
	}
}

// SampleTravel returns the demo bookings shown before anything is saved
func SampleTravel(now time.Time) []Travel {
	show := SampleShowDate(now)

	flightStart := show.Add(-24 * time.Hour)
	flightEnd := show.Add(-22 * time.Hour)
	hotelStart := show.Add(-time.Hour)
	hotelEnd := show.Add(48 * time.Hour)

	return []Travel{
		{
			ID:           uuid.New().String(),
			Type:         TravelFlight,
			Label:        "ATL → BOS (AC 1234)",
			Confirmation: "Z7X9QW",
			Start:        &flightStart,
			End:          &flightEnd,
			Details:      "Seat 14C; carry-on only.",
		},
		{
			ID:           uuid.New().String(),
			Type:         TravelHotel,
			Label:        "Westin Seaport, Boston",
			Confirmation: "H987654",
			Start:        &hotelStart,
			End:          &hotelEnd,
			Details:      "Reservation under Commercient; breakfast included.",
		},
	}
}
