package extract

import "strings"

// sampleDocuments are built-in texts for trying the pipeline without
// uploading anything. Each is comfortably above the 50-word validation
// floor.
var sampleDocuments = map[string]string{
	"AI and Machine Learning": `
Artificial Intelligence (AI) and Machine Learning (ML) have emerged as transformative technologies
that are reshaping industries and society. AI refers to the simulation of human intelligence in
machines, enabling them to perform tasks that typically require human cognition, such as learning,
reasoning, and problem-solving. Machine Learning, a subset of AI, focuses on algorithms that can
learn and improve from data without explicit programming.

The applications of AI and ML are vast and growing. In healthcare, these technologies assist in
medical diagnosis, drug discovery, and personalized treatment plans. In finance, they power
algorithmic trading, fraud detection, and risk assessment. The automotive industry leverages AI
for autonomous vehicles, while tech companies use ML for recommendation systems, natural language
processing, and computer vision.

Recent breakthroughs in deep learning, particularly with neural networks, have accelerated AI
capabilities. Large language models like GPT and BERT have revolutionized natural language
understanding, while computer vision models can now recognize and classify images with superhuman
accuracy. These advances have made AI more accessible and practical for real-world applications.

However, the rapid advancement of AI also brings challenges. Ethical considerations around bias,
privacy, and job displacement are increasingly important. The need for explainable AI, where
algorithms can provide reasoning for their decisions, has become crucial for trust and
accountability. Additionally, the environmental impact of training large AI models and the
concentration of AI power in few large corporations raise concerns about sustainability and
democratization of AI benefits.
`,

	"Climate Change Solutions": `
Climate change represents one of the most pressing challenges of our time, requiring immediate
and comprehensive action. The scientific consensus is clear: human activities, particularly the
emission of greenhouse gases from fossil fuel combustion, are driving unprecedented changes in
Earth's climate system. Rising global temperatures, melting ice caps, rising sea levels, and
extreme weather events are already impacting ecosystems and human societies worldwide.

Renewable energy technologies offer the most promising pathway to decarbonization. Solar and wind
power have become increasingly cost-competitive with fossil fuels, with dramatic price reductions
over the past decade. Energy storage solutions, particularly battery technology, are advancing
rapidly to address intermittency challenges. Additionally, emerging technologies like green
hydrogen production and carbon capture and storage show potential for hard-to-decarbonize sectors.

Beyond energy, climate solutions span multiple sectors. In transportation, electric vehicles are
gaining mainstream adoption, while sustainable aviation fuels and hydrogen-powered ships offer
solutions for long-distance travel. In agriculture, precision farming, regenerative practices,
and alternative proteins can reduce emissions while maintaining food security. Urban planning
that promotes public transportation, green buildings, and urban forests can significantly reduce
city-level emissions.

International cooperation is essential for effective climate action. The Paris Agreement provides
a framework for global collaboration, though current commitments fall short of limiting warming
to 1.5°C. Carbon pricing mechanisms, technology transfer, and climate finance for developing
countries are critical tools for accelerating the transition to a sustainable economy. Individual
actions, while important, must be coupled with systemic changes in policy, business practices,
and social norms to achieve the scale of transformation required.
`,

	"Digital Privacy and Security": `
In our increasingly connected digital world, privacy and security have become fundamental concerns
for individuals, businesses, and governments. The proliferation of smart devices, social media
platforms, and online services has created an unprecedented amount of personal data collection
and sharing. This digital ecosystem offers tremendous benefits, including personalized experiences,
improved services, and enhanced connectivity, but it also poses significant risks to individual
privacy and security.

Data breaches have become alarmingly common, with major companies experiencing security incidents
that expose millions of users' personal information. These breaches can lead to identity theft,
financial fraud, and other serious consequences for affected individuals. Moreover, the business
model of many tech companies relies on collecting and monetizing user data, often without users
fully understanding what information is being collected or how it's being used.

Governments worldwide are responding with new privacy regulations. The European Union's General
Data Protection Regulation (GDPR) has set a global standard for data protection, giving individuals
greater control over their personal data. Similar legislation, such as the California Consumer
Privacy Act (CCPA), is being implemented in other jurisdictions. These regulations require
companies to be more transparent about data collection practices and give users rights to access,
correct, and delete their personal information.

Technological solutions are also emerging to enhance privacy and security. End-to-end encryption
protects communications from unauthorized access, while privacy-preserving technologies like
differential privacy allow for data analysis without compromising individual privacy. Blockchain
technology offers potential for decentralized identity management, and artificial intelligence
is being used to detect and prevent cyber threats. However, the arms race between security
measures and malicious actors continues to evolve, requiring constant vigilance and adaptation.
`,
}

// SampleDocuments returns the built-in sample texts keyed by title,
// trimmed of surrounding whitespace.
func SampleDocuments() map[string]string {
	out := make(map[string]string, len(sampleDocuments))
	for title, text := range sampleDocuments {
		out[title] = strings.TrimSpace(text)
	}
	return out
}

// SampleDocument returns one sample by title.
func SampleDocument(title string) (string, bool) {
	text, ok := sampleDocuments[title]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(text), true
}
