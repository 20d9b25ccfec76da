package intent

// answers is the canonical answer table: one scripted sentence per topic.
// Loaded once and read-only; both tiers select from it verbatim.
var answers = map[Topic]string{
	TopicPricing:  "WorkSphere offers a free 1-month trial, after which you can choose from our Basic ($9.99/month), Professional ($19.99/month), or Enterprise ($49.99/month) plans.",
	TopicFeatures: "WorkSphere includes attendance tracking, leave management, project and task management, team messaging, video meeting scheduling, and detailed workforce analytics.",
	TopicTrial:    "Yes! WorkSphere comes with a free 1-month trial for your whole team. No credit card is required to get started.",
	TopicSupport:  "Our support team is available 24/7. You can reach us through the in-app messenger or email us at support@worksphere.com.",
	TopicMobile:   "WorkSphere works great on mobile browsers, and our dedicated iOS and Android apps let your team clock in and manage tasks on the go.",
	TopicSetup:    "Getting started is easy: sign up for the free trial, invite your team members, and you will be up and running in under 10 minutes.",
	TopicDefault:  "Thanks for reaching out! I can help with questions about pricing, features, the free trial, or support. Could you tell me a bit more about what you are looking for?",
}

// Answer returns the canonical sentence for a topic. Unknown topics get the
// default sentence so callers always receive a usable reply.
func Answer(topic Topic) string {
	if a, ok := answers[topic]; ok {
		return a
	}
	return answers[TopicDefault]
}
