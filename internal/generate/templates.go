package generate

import "github.com/yushkumar524/BiasLabPrototype/internal/bias"

type articleTemplate struct {
	Title    string
	Content  string
	Source   string
	Modifier bias.Modifier
}

type narrativeTemplate struct {
	NarrativeID string
	Articles    []articleTemplate
}

// templates is the fixed seed corpus: three narratives covered by three
// outlets each, with bodies written to trip known catalog phrases.
var templates = []narrativeTemplate{
	{
		NarrativeID: "climate-policy",
		Articles: []articleTemplate{
			{
				Title: "Biden's Climate Plan Faces Devastating Blow as Key Provisions Struck Down",
				Content: "In a shocking revelation that sent shockwaves through environmental circles, " +
					"a federal court delivered a devastating blow to the administration's climate agenda. " +
					"The ruling represents an unprecedented crisis for environmental policy, with critics " +
					"arguing the decision could have catastrophic consequences for future generations. " +
					"According to reports from anonymous sources, legal experts claim the court's extreme " +
					"measures effectively gut the program's core provisions. The controversial decision " +
					"allegedly stems from procedural violations, sources claim. Unnamed officials reportedly " +
					"defended their position against what they call radical agenda policies.",
				Source:   "CNN",
				Modifier: bias.Modifier{bias.EmotionalTone: 20, bias.FramingChoices: 15},
			},
			{
				Title: "Court Delivers Common-Sense Solution to Regulatory Overreach",
				Content: "A federal appeals court struck down key provisions of the administration's climate " +
					"regulations in what legal experts are calling a victory for economic freedom. The ruling " +
					"challenges what critics describe as the radical agenda of environmental extremists who " +
					"have allegedly pushed through failed policies. Unnamed officials claim the decision will " +
					"reportedly save businesses billions while restoring balance to environmental policy. The " +
					"administration now faces backlash from industry groups who defended their position against " +
					"the controversial regulatory overreach. Anonymous sources suggest this devastating blow to " +
					"bureaucratic power represents a common-sense solution.",
				Source:   "Fox News",
				Modifier: bias.Modifier{bias.IdeologicalStance: 20, bias.FramingChoices: 25},
			},
			{
				Title: "Appeals Court Rules Against Climate Regulations",
				Content: "The U.S. Court of Appeals for the D.C. Circuit ruled against several climate " +
					"regulations on Tuesday, citing procedural concerns in the rulemaking process. The " +
					"three-judge panel found that the Environmental Protection Agency had not followed proper " +
					"administrative procedures when implementing the contested provisions. Industry groups " +
					"welcomed the decision, while environmental advocates expressed disappointment. The EPA " +
					"indicated it would review the ruling and consider its options for appeal. Critics argue " +
					"this represents a controversial setback, though sources claim the agency reportedly will " +
					"continue defending their position. According to reports, unnamed officials allegedly view " +
					"this as part of a broader pattern.",
				Source:   "Reuters",
				Modifier: bias.Modifier{bias.EmotionalTone: -10, bias.FramingChoices: -15},
			},
		},
	},
	{
		NarrativeID: "economic-recovery",
		Articles: []articleTemplate{
			{
				Title: "Jobs Report Shows Dramatic Surge in Employment Growth",
				Content: "The latest employment data reveals an explosive recovery in the job market, with " +
					"unemployment dropping to levels not seen since before the pandemic. Economists describe " +
					"the numbers as a shocking revelation of economic resilience. The unprecedented growth " +
					"reportedly demonstrates the success of recent policy measures, though critics argue more " +
					"work remains to be done. According to reports from labor analysts, the controversial " +
					"stimulus spending allegedly contributed to the dramatic surge. Anonymous sources claim " +
					"this devastating blow to unemployment represents a common-sense solution, while unnamed " +
					"officials defended their position on economic policy.",
				Source:   "CNN",
				Modifier: bias.Modifier{bias.EmotionalTone: 15, bias.FramingChoices: 10},
			},
			{
				Title: "Employment Numbers Mask Underlying Economic Concerns",
				Content: "While headline unemployment figures show improvement, a deeper analysis reveals " +
					"concerning trends beneath the surface. Many of the jobs created are allegedly temporary " +
					"or part-time positions, according to unnamed officials familiar with the data. The radical " +
					"agenda of excessive government spending may have created artificial demand, critics argue, " +
					"leading to potentially catastrophic long-term consequences for fiscal stability. Anonymous " +
					"sources claim the administration now faces backlash over failed policies that reportedly " +
					"mask deeper problems. This controversial approach represents extreme measures that sources " +
					"claim could deliver a devastating blow to economic stability.",
				Source:   "Wall Street Journal",
				Modifier: bias.Modifier{bias.FactualGrounding: -10, bias.SourceTransparency: -15},
			},
			{
				Title: "US Unemployment Rate Falls to 3.7% in Latest Report",
				Content: "The Bureau of Labor Statistics reported that unemployment fell to 3.7% last month, " +
					"down from 3.9% the previous month. The economy added 245,000 jobs, slightly below " +
					"economist expectations of 250,000. Labor force participation remained steady at 62.8%. " +
					"The Federal Reserve is monitoring these indicators as it considers future monetary policy " +
					"decisions. Critics argue the numbers are controversial, while sources claim this reportedly " +
					"represents solid progress. According to reports, unnamed officials allegedly view this as " +
					"validation of their approach, though some defended their position on the need for " +
					"continued vigilance.",
				Source: "Associated Press",
			},
		},
	},
	{
		NarrativeID: "tech-regulation",
		Articles: []articleTemplate{
			{
				Title: "Silicon Valley Giants Face Unprecedented Regulatory Crackdown",
				Content: "In a shocking revelation that has sent shockwaves through the tech industry, federal " +
					"regulators announced explosive new measures targeting major technology companies. The " +
					"unprecedented crisis for Big Tech allegedly stems from failed policies of self-regulation, " +
					"according to leaked documents from unnamed officials. Critics argue these extreme measures " +
					"represent a devastating blow to innovation, while anonymous sources claim the companies " +
					"reportedly engaged in anti-competitive practices. The controversial crackdown has put tech " +
					"giants under fire as they face backlash from regulators who defended their position on " +
					"market competition.",
				Source:   "The Guardian",
				Modifier: bias.Modifier{bias.EmotionalTone: 25, bias.SourceTransparency: -20},
			},
			{
				Title: "Government Overreach Threatens Tech Innovation Engine",
				Content: "The administration's radical agenda to regulate technology companies represents a " +
					"catastrophic threat to American innovation leadership. These extreme measures allegedly " +
					"target successful companies that have driven economic growth, according to reports from " +
					"industry insiders. The common-sense solution, critics argue, is to let market forces work " +
					"rather than impose devastating regulatory burdens that unnamed officials claim could " +
					"reportedly destroy jobs and innovation. The controversial crackdown puts the industry " +
					"under fire as companies face backlash from bureaucrats who have defended their position " +
					"through failed policies and anonymous sources.",
				Source:   "Fox News",
				Modifier: bias.Modifier{bias.IdeologicalStance: 25, bias.FramingChoices: 20},
			},
			{
				Title: "Antitrust Regulators Announce Investigation into Tech Practices",
				Content: "The Department of Justice and Federal Trade Commission announced a joint investigation " +
					"into competitive practices among major technology platforms. The investigation will examine " +
					"market concentration, data privacy policies, and acquisition strategies over the past five " +
					"years. Technology companies expressed willingness to cooperate with the investigation while " +
					"maintaining that their practices comply with existing regulations. The agencies plan to " +
					"complete their preliminary review within six months. Some critics argue this controversial " +
					"move puts companies under fire, while sources claim regulators reportedly defended their " +
					"position. According to reports, unnamed officials allegedly believe this represents " +
					"necessary oversight, though the industry faces backlash from various stakeholders.",
				Source: "Reuters",
			},
		},
	},
}
