package placeapi

import (
	"net/url"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders a request as a command line that can be pasted into a shell to repeat it.
func curlCommand(target string, form url.Values, cred Credential, requestID string) string {
	var b commandBuilder
	b.add("curl", "-i", "-X", "POST", "-H", requestIDHeader+": "+requestID)
	if cred.IsDefined() {
		b.add("--cookie", TokenCookie+"="+cred.Token)
	}
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range form[k] {
			b.add("--data-urlencode", k+"="+v)
		}
	}
	b.add(target)
	return b.String()
}
