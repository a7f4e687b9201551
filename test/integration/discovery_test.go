package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"mentorlink_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discoveredUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func discover(t *testing.T, ts *helpers.TestServer, token, query string) []discoveredUser {
	t.Helper()
	res, bodyStr := ts.SendRequest(t, "GET", "/users"+query, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var users []discoveredUser
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &users))
	return users
}

func containsUser(users []discoveredUser, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// nonce gives each test a marker string so shared-database noise from other
// tests cannot leak into its filtered results.
func nonce(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func setSkills(t *testing.T, ts *helpers.TestServer, token string, skills ...string) {
	t.Helper()
	res, bodyStr := ts.SendRequest(t, "PUT", "/users/me", token, map[string]interface{}{
		"skills": skills,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
}

func TestDiscovery_ExcludesSelf(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginMentor(t, ts)

	users := discover(t, ts, token, "")

	assert.False(t, containsUser(users, user.ID), "viewer must never appear in their own results")
}

// Any connection record, in any status and either direction, removes the
// counterpart from discovery.
func TestDiscovery_ExcludesRelatedUsers(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	marker := nonce("related")

	viewerToken, _ := helpers.CreateAndLoginMentor(t, ts)
	pendingToken, pendingUser := helpers.CreateAndLoginMentee(t, ts)
	acceptedToken, acceptedUser := helpers.CreateAndLoginMentee(t, ts)
	declinedToken, declinedUser := helpers.CreateAndLoginMentee(t, ts)
	freeToken, freeUser := helpers.CreateAndLoginMentee(t, ts)

	// Tag everyone with the marker skill so the filter isolates this test.
	for _, token := range []string{pendingToken, acceptedToken, declinedToken, freeToken} {
		setSkills(t, ts, token, marker)
	}

	// pending
	helpers.SendConnectionRequest(t, ts, viewerToken, pendingUser.ID)

	// accepted
	acceptedConnID := helpers.SendConnectionRequest(t, ts, viewerToken, acceptedUser.ID)
	acceptRes, _ := ts.SendRequest(t, "PUT", "/connections/"+acceptedConnID, acceptedToken, map[string]interface{}{
		"status": "accepted",
	})
	require.Equal(t, http.StatusOK, acceptRes.StatusCode)

	// declined
	declinedConnID := helpers.SendConnectionRequest(t, ts, viewerToken, declinedUser.ID)
	declineRes, _ := ts.SendRequest(t, "PUT", "/connections/"+declinedConnID, declinedToken, map[string]interface{}{
		"status": "declined",
	})
	require.Equal(t, http.StatusOK, declineRes.StatusCode)

	users := discover(t, ts, viewerToken, "?skill="+url.QueryEscape(marker))

	assert.False(t, containsUser(users, pendingUser.ID), "pending counterpart must be hidden")
	assert.False(t, containsUser(users, acceptedUser.ID), "accepted counterpart must be hidden")
	assert.False(t, containsUser(users, declinedUser.ID), "declined counterpart must be hidden")
	assert.True(t, containsUser(users, freeUser.ID), "unrelated user must stay visible")
}

func TestDiscovery_RoleFilter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	marker := nonce("role")

	viewerToken, _ := helpers.CreateAndLoginMentor(t, ts)
	mentorToken, mentor := helpers.CreateAndLoginMentor(t, ts)
	menteeToken, mentee := helpers.CreateAndLoginMentee(t, ts)
	setSkills(t, ts, mentorToken, marker)
	setSkills(t, ts, menteeToken, marker)

	mentors := discover(t, ts, viewerToken, "?role=mentor&skill="+url.QueryEscape(marker))
	assert.True(t, containsUser(mentors, mentor.ID))
	assert.False(t, containsUser(mentors, mentee.ID))

	mentees := discover(t, ts, viewerToken, "?role=mentee&skill="+url.QueryEscape(marker))
	assert.True(t, containsUser(mentees, mentee.ID))
	assert.False(t, containsUser(mentees, mentor.ID))
}

func TestDiscovery_InvalidRoleFilter(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginMentor(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/users?role=admin", token, nil)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestDiscovery_SearchAcrossFields(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	marker := nonce("search")

	viewerToken, _ := helpers.CreateAndLoginMentor(t, ts)

	bioToken, bioUser := helpers.CreateAndLoginMentee(t, ts)
	res, bodyStr := ts.SendRequest(t, "PUT", "/users/me", bioToken, map[string]interface{}{
		"bio": "I write about " + marker + " at work.",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	skillToken, skillUser := helpers.CreateAndLoginMentee(t, ts)
	setSkills(t, ts, skillToken, marker)

	users := discover(t, ts, viewerToken, "?search="+url.QueryEscape(marker))

	assert.True(t, containsUser(users, bioUser.ID), "bio match must be found")
	assert.True(t, containsUser(users, skillUser.ID), "skill match must be found")
}

// LIKE metacharacters in filter input must match literally, not as
// wildcards.
func TestDiscovery_LikeMetacharactersLiteral(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	marker := nonce("pct")

	viewerToken, _ := helpers.CreateAndLoginMentor(t, ts)

	percentToken, percentUser := helpers.CreateAndLoginMentee(t, ts)
	setSkills(t, ts, percentToken, marker+"100%")

	plainToken, plainUser := helpers.CreateAndLoginMentee(t, ts)
	setSkills(t, ts, plainToken, marker+"100x")

	users := discover(t, ts, viewerToken, "?skill="+url.QueryEscape(marker+"100%"))

	assert.True(t, containsUser(users, percentUser.ID), "literal %% match must be found")
	assert.False(t, containsUser(users, plainUser.ID), "%% must not act as a wildcard")
}

func TestDiscovery_CombinedFilters(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	marker := nonce("combo")

	viewerToken, _ := helpers.CreateAndLoginMentor(t, ts)

	matchToken, matchUser := helpers.CreateAndLoginMentee(t, ts)
	setSkills(t, ts, matchToken, marker)

	wrongRoleToken, wrongRoleUser := helpers.CreateAndLoginMentor(t, ts)
	setSkills(t, ts, wrongRoleToken, marker)

	users := discover(t, ts, viewerToken, "?role=mentee&skill="+url.QueryEscape(marker))

	assert.True(t, containsUser(users, matchUser.ID))
	assert.False(t, containsUser(users, wrongRoleUser.ID), "filters must combine with AND")
}
