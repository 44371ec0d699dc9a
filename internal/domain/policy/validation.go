package policy

import "fmt"

// ValidationReport summarizes whether a policy is internally consistent.
// Errors make verification impossible for the community; warnings flag
// configuration that works but is probably not what the admin intended.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a policy for contradictions between its requirements and
// the configured channels and roles.
func (p *Policy) Validate() ValidationReport {
	report := ValidationReport{Errors: []string{}, Warnings: []string{}}

	if p.verifiedRoleID == "" {
		report.Errors = append(report.Errors, "no verified role is configured")
	}
	if p.requirements.YouTubeSubscription && p.youtubeChannelID == "" {
		report.Errors = append(report.Errors,
			"YouTube subscription is required but no YouTube channel is configured")
	}
	if (p.requirements.TwitchFollow || p.requirements.TwitchSubscription) && p.twitchChannelLogin == "" {
		report.Errors = append(report.Errors,
			"a Twitch check is required but no Twitch channel is configured")
	}
	if !p.requirements.YouTubeSubscription && !p.requirements.TwitchFollow && !p.requirements.TwitchSubscription {
		report.Warnings = append(report.Warnings,
			"no checks are required, every member verifies successfully")
	}
	if p.adminRoleID == "" {
		report.Warnings = append(report.Warnings, "no admin role is configured")
	}
	if !p.autoAssignRole && p.verifiedRoleID != "" {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"verified role %s is configured but automatic role assignment is off", p.verifiedRoleID))
	}
	if p.youtubeChannelID != "" && !p.requirements.YouTubeSubscription {
		report.Warnings = append(report.Warnings,
			"a YouTube channel is configured but the subscription check is off")
	}

	report.Valid = len(report.Errors) == 0
	return report
}
