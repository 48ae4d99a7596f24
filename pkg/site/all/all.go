// Package all registers every supported site.
//
//	import _ "github.com/codeGROOVE-dev/embedfix/pkg/site/all"
package all

import (
	_ "github.com/codeGROOVE-dev/embedfix/pkg/bluesky"   // BlueSky
	_ "github.com/codeGROOVE-dev/embedfix/pkg/instagram" // Instagram
	_ "github.com/codeGROOVE-dev/embedfix/pkg/reddit"    // Reddit
	_ "github.com/codeGROOVE-dev/embedfix/pkg/tiktok"    // TikTok
	_ "github.com/codeGROOVE-dev/embedfix/pkg/twitter"   // Twitter/X
)
