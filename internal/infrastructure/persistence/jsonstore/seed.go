package jsonstore

import "encoding/json"

// DefaultWorkspaces is the set written to a fresh workspace file.
func DefaultWorkspaces() map[string]json.RawMessage {
	return map[string]json.RawMessage{
		"Math Layout": json.RawMessage(`{
			"main1": {"url": "https://app.haldor.se/"},
			"main2": {"url": "https://nokportalen.se/"},
			"main3": {"url": "https://www.onenote.com/?public=1&wdorigin=ondcauth2&wdorigin=ondc"},
			"main4": {"url": "https://www.microsoft.com/sv-se/microsoft-teams/log-in?market=se"}
		}`),
		"Programming Layout": json.RawMessage(`{
			"main1": {"url": "https://app.haldor.se/"},
			"main2": {"url": "https://github.com/"},
			"main3": {"url": "https://chatgpt.com/"},
			"main4": {"url": "https://www.w3schools.com/"}
		}`),
		"Swedish Layout": json.RawMessage(`{
			"main1": {"url": "https://word.cloud.microsoft/en-us/"},
			"main2": {"url": "https://app.haldor.se/"},
			"main3": {"url": "https://teams.microsoft.com/v2/"},
			"main4": {"url": "https://svenska.se/"}
		}`),
	}
}
